// Package launcher is the desktop entry point: it starts the service as
// a child process, waits until it accepts connections and opens the
// journal in the system browser.
package launcher

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/mitchellh/go-ps"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/reflectdiary/diary-api/cmd/service"
)

const startupTimeout = 15 * time.Second

type Options struct {
	ConfigPath string
	NoBrowser  bool
}

func (o *Options) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&o.ConfigPath, "config", "c", "", "start the service with the given config file")
	flagSet.BoolVar(&o.NoBrowser, "no-browser", false, "do not open the browser after startup")
}

func NewCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "launch",
		Short: "start the diary and open it in the browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func Run(opts *Options) error {
	if err := checkAlreadyRunning(); err != nil {
		return err
	}

	self, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	args := []string{"service"}
	if opts.ConfigPath != "" {
		args = append(args, "-c", opts.ConfigPath)
	}
	child := exec.Command(self, args...)
	child.Stderr = os.Stderr

	stdout, err := child.StdoutPipe()
	if err != nil {
		return fmt.Errorf("pipe service stdout: %w", err)
	}

	if err := child.Start(); err != nil {
		return fmt.Errorf("start service: %w", err)
	}

	ready := make(chan string, 1)
	go func() {
		markerPrefix := strings.Split(service.ReadyMarkerFormat, "%s")[0]
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			line := scanner.Text()
			fmt.Println(line)
			if addr, found := strings.CutPrefix(line, markerPrefix); found {
				select {
				case ready <- strings.TrimSpace(addr):
				default:
				}
			}
		}
	}()

	exited := make(chan error, 1)
	go func() {
		exited <- child.Wait()
	}()

	select {
	case addr := <-ready:
		if !opts.NoBrowser {
			if err := openBrowser(serviceURL(addr)); err != nil {
				slog.Warn("could not open the browser", slog.String("error", err.Error()))
			}
		}
	case err := <-exited:
		return fmt.Errorf("service exited before becoming ready: %w", err)
	case <-time.After(startupTimeout):
		_ = child.Process.Kill()
		return fmt.Errorf("service did not become ready within %s", startupTimeout)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-exited:
		return err
	case <-signals:
		_ = child.Process.Signal(os.Interrupt)
		select {
		case <-exited:
		case <-time.After(5 * time.Second):
			_ = child.Process.Kill()
		}
		return nil
	}
}

// checkAlreadyRunning scans the process table for another live instance
// of this binary.
func checkAlreadyRunning() error {
	self, err := os.Executable()
	if err != nil {
		return nil
	}
	name := filepath.Base(self)

	processes, err := ps.Processes()
	if err != nil {
		return nil
	}
	for _, p := range processes {
		if p.Pid() == os.Getpid() {
			continue
		}
		if p.Executable() == name {
			return fmt.Errorf("diary is already running (pid %d)", p.Pid())
		}
	}
	return nil
}

func serviceURL(addr string) string {
	if devURL := os.Getenv("DIARY_DEV_URL"); devURL != "" {
		return devURL
	}
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}

func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
