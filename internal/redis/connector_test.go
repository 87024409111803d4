package redis

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/MrSnakeDoc/soccerfront/internal/logger"
)

func TestConnectRejectsInvalidOptions(t *testing.T) {
	base := ConnectOptions{
		Addr:           "localhost:6379",
		ConnectTimeout: time.Second,
		RetryInterval:  100 * time.Millisecond,
		MaxWait:        time.Second,
	}

	tests := []struct {
		name   string
		mutate func(*ConnectOptions)
	}{
		{name: "empty addr", mutate: func(o *ConnectOptions) { o.Addr = "" }},
		{name: "zero connect timeout", mutate: func(o *ConnectOptions) { o.ConnectTimeout = 0 }},
		{name: "zero retry interval", mutate: func(o *ConnectOptions) { o.RetryInterval = 0 }},
		{name: "max wait below retry interval", mutate: func(o *ConnectOptions) { o.MaxWait = time.Millisecond }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := base
			tt.mutate(&opts)
			if _, err := Connect(context.Background(), opts, logger.Nop()); err == nil {
				t.Error("Connect() should reject invalid options")
			}
		})
	}
}

func TestConnectGivesUpAfterTimeout(t *testing.T) {
	// grab a free port and release it so nothing is listening there
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	addr := l.Addr().String()
	_ = l.Close()

	start := time.Now()
	_, err = Connect(context.Background(), ConnectOptions{
		Addr:           addr,
		DialTimeout:    50 * time.Millisecond,
		ConnectTimeout: 300 * time.Millisecond,
		RetryInterval:  50 * time.Millisecond,
		MaxWait:        100 * time.Millisecond,
	}, logger.Nop())
	if err == nil {
		t.Fatal("Connect() to a closed port should fail")
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("Connect() took %v, want it bounded by ConnectTimeout", elapsed)
	}
}
