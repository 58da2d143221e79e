// embed.go - 资源嵌入声明
// 必须放在项目根目录（与 data/ 同级）
// 因为 //go:embed 指令只能嵌入当前包目录及其子目录的文件
package main

import "embed"

// 幻灯片图片较大，从 --assets 目录读取，不嵌入可执行文件
//
//go:embed data/gallery.yaml
var dataFS embed.FS
