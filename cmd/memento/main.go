package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"memento-backend/internal/config"
	"memento-backend/internal/utils"
	"memento-backend/internal/view"
	"memento-backend/pkg/logger"
)

// 标准输入最多读取的字节数，远大于视图允许的字符数，超出部分由 SetText 截断
const maxInputBytes = 64 << 10

func main() {
	var (
		configPath string
		text       string
		endpoint   string
		outDir     string
		noDownload bool
	)
	flag.StringVar(&configPath, "config", "", "配置文件路径")
	flag.StringVar(&text, "text", "", "当天的回顾文本，省略时从标准输入读取")
	flag.StringVar(&endpoint, "endpoint", "", "服务地址，覆盖 view.endpoint")
	flag.StringVar(&outDir, "out", "", "下载目录，覆盖 view.download_dir")
	flag.BoolVar(&noDownload, "no-download", false, "只生成，不下载")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.InitWithOutput(cfg.Log.Level, cfg.Log.Format, os.Stderr); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	if endpoint == "" {
		endpoint = cfg.View.Endpoint
	}
	if outDir == "" {
		outDir = cfg.View.DownloadDir
	}
	if text == "" {
		text, err = readText(os.Stdin)
		if err != nil {
			logger.Fatalf("读取输入失败: %v", err)
		}
	}

	client, err := view.NewHTTPClient(endpoint, utils.NewHTTPClient(cfg.View.Timeout))
	if err != nil {
		logger.Fatalf("%v", err)
	}

	alerter := view.AlerterFunc(func(message string) {
		fmt.Fprintln(os.Stderr, message)
	})

	v := view.NewReflectionView(client, alerter, outDir, view.WithMaxChars(cfg.View.MaxChars))
	v.SetText(text)
	if got := utf8.RuneCountInString(v.Text()); got < utf8.RuneCountInString(text) {
		logger.Warnf("输入超过 %d 个字符，已截断", got)
	}

	ctx := context.Background()
	v.Generate(ctx)

	image, ok := v.GeneratedImage()
	if !ok {
		os.Exit(1)
	}
	fmt.Println(image)

	if noDownload {
		return
	}
	path, ok := v.Download(ctx)
	if !ok {
		os.Exit(1)
	}
	fmt.Println(path)
}

func readText(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxInputBytes))
	if err != nil {
		return "", err
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.TrimRight(text, "\n"), nil
}
