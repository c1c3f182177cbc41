// Command smbput uploads a single local file to a share-backed directory.
//
// Configuration is layered: built-in defaults, then a .env file (if present),
// then environment variables, then command-line flags.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/opd-ai/smbshare"
	"github.com/opd-ai/smbshare/billyshare"
	"github.com/opd-ai/smbshare/smb"
	"github.com/opd-ai/smbshare/transfer"
)

type config struct {
	shareRoot string // local directory served as the share
	share     string
	dir       string
	name      string
	source    string
	suffix    string
	workers   int
	logFile   string
}

func defaults() config {
	return config{
		share:   "public",
		suffix:  ".part",
		workers: 2,
		logFile: "smbput.log",
	}
}

func fromEnv(cfg *config) {
	if v := os.Getenv("SMBPUT_SHARE_ROOT"); v != "" {
		cfg.shareRoot = v
	}
	if v := os.Getenv("SMBPUT_SHARE"); v != "" {
		cfg.share = v
	}
	if v := os.Getenv("SMBPUT_DIR"); v != "" {
		cfg.dir = v
	}
	if v := os.Getenv("SMBPUT_SUFFIX"); v != "" {
		cfg.suffix = v
	}
	if v := os.Getenv("SMBPUT_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.workers = n
		}
	}
	if v := os.Getenv("SMBPUT_LOG"); v != "" {
		cfg.logFile = v
	}
}

func loadConfig() config {
	cfg := defaults()

	// A missing .env file is not an error.
	_ = godotenv.Load()
	fromEnv(&cfg)

	flag.StringVar(&cfg.shareRoot, "root", cfg.shareRoot, "local directory served as the share")
	flag.StringVar(&cfg.share, "share", cfg.share, "share name")
	flag.StringVar(&cfg.dir, "dir", cfg.dir, "directory within the share")
	flag.StringVar(&cfg.name, "name", cfg.name, "remote file name (defaults to the source base name)")
	flag.StringVar(&cfg.source, "src", cfg.source, "local file to upload")
	flag.StringVar(&cfg.suffix, "suffix", cfg.suffix, "staging suffix; empty disables staging and resume")
	flag.IntVar(&cfg.workers, "workers", cfg.workers, "concurrent transfer workers")
	flag.StringVar(&cfg.logFile, "log", cfg.logFile, "log file path")
	flag.Parse()

	return cfg
}

func initLogging(path string) {
	logrus.SetOutput(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
	})
	logrus.SetFormatter(&logrus.JSONFormatter{})
}

// printer renders progress on the terminal; the library delivers callbacks
// off the transfer loop, so printing here never slows the upload.
type printer struct {
	name string
}

func (p *printer) TransferProgress(_ *transfer.UploadTask, sent, expected int64) {
	pct := 100.0
	if expected > 0 {
		pct = float64(sent) / float64(expected) * 100
	}
	fmt.Printf("\r%s  %d/%d bytes (%.1f%%)", p.name, sent, expected, pct)
}

func (p *printer) TransferCompleted(*transfer.UploadTask) {
	fmt.Println()
	color.Green("uploaded %s", p.name)
}

func (p *printer) TransferFailed(_ *transfer.UploadTask, err error) {
	fmt.Println()
	color.Red("upload of %s failed: %v", p.name, err)
}

func main() {
	cfg := loadConfig()
	if cfg.source == "" || cfg.shareRoot == "" {
		fmt.Fprintln(os.Stderr, "usage: smbput -root <share-dir> -src <file> [-share name] [-dir path] [-name file]")
		os.Exit(2)
	}
	if cfg.name == "" {
		cfg.name = filepath.Base(cfg.source)
	}
	initLogging(cfg.logFile)

	channel := billyshare.New()
	channel.AddDirShare(cfg.share, cfg.shareRoot)

	client, err := smbshare.New(channel, &smbshare.Options{
		Workers:    cfg.workers,
		TempSuffix: cfg.suffix,
	})
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
	defer client.Kill()

	dest := smb.Path{Share: cfg.share, Dir: cfg.dir}
	task, err := client.Upload(cfg.source, dest, cfg.name, &printer{name: cfg.name})
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
	task.Wait()

	if task.State() != transfer.StateCompleted {
		os.Exit(1)
	}
}
