package app

// Version is the kp version, stamped at build time:
//
//	go build -ldflags "-X github.com/kubepick/kubepick/internal/app.Version=v0.1.0"
var Version = "dev"
