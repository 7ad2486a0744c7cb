package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"vincode/internal/dropzone"
	"vincode/internal/system"
	"vincode/internal/webui/server"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "address to bind (host:port, default from config)")
	serveCmd.Flags().BoolP("open", "o", false, "open the browser after start")
	serveCmd.Flags().Bool("no-open", false, "never open the browser")
	serveCmd.Flags().String("drop-dir", "", "watch this directory and upload files dropped into it")
}

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"webui"},
	Short:   "Start the playground web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.Server.Addr
		}
		open := cfg.Server.Open
		if cmd.Flags().Changed("open") {
			open, _ = cmd.Flags().GetBool("open")
		}
		if noOpen, _ := cmd.Flags().GetBool("no-open"); noOpen {
			open = false
		}
		drop, _ := cmd.Flags().GetString("drop-dir")
		if drop == "" {
			drop = cfg.DropDir
		}

		store, err := newStore(cfg)
		if err != nil {
			return err
		}
		srv := &server.Server{Addr: addr, Store: store}

		// Handle Ctrl+C
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		if drop != "" {
			w := dropzone.New(drop, "", store)
			go func() {
				if err := w.Run(ctx); err != nil {
					system.Logger.Error("drop zone stopped", "dir", drop, "err", err)
				}
			}()
			system.Logger.Info("watching drop zone", "dir", drop)
		}

		url := fmt.Sprintf("http://%s/", browserHost(addr))
		system.Logger.Info("starting playground", "url", url)
		if open {
			if err := system.OpenBrowser(url); err != nil {
				system.Logger.Warn("failed to open browser", "err", err)
			}
		}
		if err := srv.Start(ctx); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		}
		return nil
	},
}

// browserHost turns a bind address like ":8787" or "0.0.0.0:8787" into
// something a browser can open.
func browserHost(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, port)
}
