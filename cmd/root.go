// Package cmd holds the command line surface of the interpreter.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abircic/aash/commands"
	"github.com/abircic/aash/core"
	"github.com/abircic/aash/core/config"
	"github.com/abircic/aash/core/logger"
	"github.com/abircic/aash/core/sys"
	"github.com/abircic/aash/core/ttylog"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands.
// Running it starts an interactive session.
var rootCmd = &cobra.Command{
	Use:   commands.Name,
	Short: "Ante Bircic's AASH",
	Long:  `A minimal interactive command interpreter.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		sessionID := logger.NewSessionID()
		sessionLog, logCloser, err := logger.New(configuration.Log, sessionID)
		if err != nil {
			return err
		}
		defer logCloser.Close()

		sysOS := sys.New()
		if configuration.Record.Dir != "" {
			recordedOS, castCloser, err := recordSession(sysOS, configuration.Record.Dir, sessionID)
			if err != nil {
				return err
			}
			defer castCloser.Close()
			sysOS = recordedOS
		}

		shell, err := core.NewShell(sysOS, configuration, sessionLog)
		if err != nil {
			return err
		}

		return shell.Run()
	},
}

// recordSession tees the session's streams into an asciicast file named
// after the session. The returned closer owns the file.
func recordSession(sysOS sys.OS, dir, sessionID string) (sys.OS, io.Closer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, err
	}

	name := filepath.Join(dir, fmt.Sprintf("%s.%s", sessionID, ttylog.AsciicastFileExt))
	fd, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}

	header := ttylog.Header{Title: commands.Name + " session " + sessionID}
	if f, ok := sysOS.Stdout().(*os.File); ok {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil {
			header.Width = width
			header.Height = height
		}
	}

	sink := ttylog.NewAsciicastLogSink(fd, header)
	recorder := ttylog.NewRecorder(sysOS.Stdin(), sysOS.Stdout(), sysOS.Stderr(), sink)
	return sys.WithIO(sysOS, recorder.Stdin(), recorder.Stdout(), recorder.Stderr()), fd, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (defaults to built-in settings)")
}
