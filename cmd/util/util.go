package util

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/noticehub/noticehub/lib/board"
	"github.com/noticehub/noticehub/lib/codec"
	"github.com/noticehub/noticehub/lib/common"
	"github.com/noticehub/noticehub/lib/db"
	"github.com/noticehub/noticehub/lib/db/engines/birch"
	"github.com/noticehub/noticehub/lib/store"
	"github.com/noticehub/noticehub/lib/store/fstore"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupStoreFlags adds the common storage flags to a command
func SetupStoreFlags(cmd *cobra.Command) {
	key := "data"
	cmd.PersistentFlags().String(key, "noticehub.db", WrapString("Path of the snapshot file holding the board data"))

	key = "codec"
	cmd.PersistentFlags().String(key, "json", WrapString("Codec used to serialize the collections (json, gob)"))

	key = "key-prefix"
	cmd.PersistentFlags().String(key, "noticehub_", WrapString("Prefix of the collection keys in the store"))

	key = "log-level"
	cmd.PersistentFlags().String(key, "info", WrapString("Log level (debug, info, warn, error)"))

	key = "no-seed"
	cmd.PersistentFlags().Bool(key, false, WrapString("Skip seeding the demo accounts and sample notice on startup"))
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("noticehub")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetCodec creates a collection codec based on configuration
func GetCodec() (codec.ICodec, error) {
	switch viper.GetString("codec") {
	case "json":
		return codec.NewJSONCodec(), nil
	case "gob":
		return codec.NewGOBCodec(), nil
	default:
		return nil, fmt.Errorf("invalid codec %s", viper.GetString("codec"))
	}
}

// OpenStore opens the file-backed store at the configured snapshot path
func OpenStore() (store.IStore, error) {
	return fstore.NewFileStore(viper.GetString("data"), func() db.KVDB {
		return birch.NewBirchDB()
	})
}

// OpenBoard opens the store and builds the board facade on top of it.
// Unless disabled, the demo data set is seeded (a no-op when data exists).
func OpenBoard() (board.IBoard, store.IStore, error) {
	level, err := common.ParseLogLevel(viper.GetString("log-level"))
	if err != nil {
		return nil, nil, err
	}
	common.SetLevelAll(level)

	c, err := GetCodec()
	if err != nil {
		return nil, nil, err
	}

	s, err := OpenStore()
	if err != nil {
		return nil, nil, err
	}

	b := board.New(s, c, board.Keyspace{Prefix: viper.GetString("key-prefix")})

	// bootstrap: one-time seeding, idempotent on every later call
	if !viper.GetBool("no-seed") {
		if err := b.SeedIfEmpty(); err != nil {
			return nil, nil, err
		}
	}

	return b, s, nil
}

// BindCommandFlags binds a command's flags (and the inherited persistent
// flags) to viper
func BindCommandFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return err
	}
	return viper.BindPFlags(cmd.Flags())
}
