// Package cli implements the reflect-journal CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/reflect-journal/internal/config"
	"github.com/rcliao/reflect-journal/internal/journal"
	"github.com/rcliao/reflect-journal/internal/llm"
	"github.com/rcliao/reflect-journal/internal/store"
)

var (
	dbPath     string
	formatFlag string
	envFile    string
	verbose    bool

	cfg *config.Config
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "reflect-journal",
	Short: "Daily reflection journal with AI insights",
	Long: "Record a morning journal, intention, dream and priorities; get a reflection, " +
		"dream interpretation, mindset insight and day strategy back. SQLite-backed, one entry per day.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $REFLECT_DB or ~/.reflect-journal/entries.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "Output format: json or text (default: $REFLECT_FORMAT or json)")
	RootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment from this file instead of ./.env")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log generation details to stderr")
}

func loadConfig() *config.Config {
	if cfg != nil {
		return cfg
	}
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	c, err := config.Load(files...)
	if err != nil {
		exitErr("load config", err)
	}
	if dbPath != "" {
		p, err := config.ExpandPath(dbPath)
		if err != nil {
			exitErr("db path", err)
		}
		c.DBPath = p
	}
	if formatFlag != "" {
		c.Format = formatFlag
	}
	cfg = c
	return cfg
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(loadConfig().DBPath)
}

func newLogger() *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "reflect-journal: ", log.LstdFlags)
}

func newGenerator(s journal.Saver) *journal.Generator {
	client, err := llm.New(loadConfig().LLM)
	if err != nil {
		exitErr("model client", err)
	}
	return journal.NewGenerator(s, client, journal.WithLogger(newLogger()))
}

func textFormat() bool {
	return loadConfig().Format == "text"
}

func printJSON(w io.Writer, v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(w, string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
