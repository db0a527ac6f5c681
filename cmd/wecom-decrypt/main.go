// Command wecom-decrypt decrypts a WeCom encrypted callback payload captured
// from logs. It prints per-stage progress so a failing payload can be
// pinpointed to the stage that rejects it.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	wecomkit "github.com/wecomkit/callback-go"
)

const version = "1.0.0"

var (
	keyMaterial string
	envFile     string
	strict      bool
	quiet       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wecom-decrypt <ciphertext>",
		Short: "Decrypt a WeCom encrypted callback payload",
		Long: `Decrypt a WeCom encrypted callback payload (msg_encrypt or echostr).

Paste the base64 ciphertext straight from your logs; a payload mangled by
URL decoding (spaces instead of '+') is repaired automatically. The key
material is the EncodingAESKey from the WeCom admin console.`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVar(&keyMaterial, "key", "", "EncodingAESKey (or set WECOM_ENCODING_AES_KEY)")
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "dotenv file to load before reading the environment")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "validate every PKCS7 padding byte instead of trusting the pad length")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "suppress stage-by-stage progress output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
	} else {
		// a local .env is optional
		_ = godotenv.Load()
	}

	if keyMaterial == "" {
		keyMaterial = os.Getenv("WECOM_ENCODING_AES_KEY")
	}
	if keyMaterial == "" {
		return fmt.Errorf("--key is required (or set WECOM_ENCODING_AES_KEY)")
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if quiet {
		logger = logger.Level(zerolog.WarnLevel)
	}

	opts := []wecomkit.Option{
		wecomkit.WithReporter(stageLogger{log: logger}),
	}
	if strict {
		opts = append(opts, wecomkit.WithStrictPadding())
	}

	msg, err := wecomkit.Decrypt(keyMaterial, args[0], opts...)
	if err != nil {
		var stageErr *wecomkit.StageError
		if errors.As(err, &stageErr) {
			logger.Error().
				Str("stage", string(stageErr.Stage)).
				Err(stageErr.Err).
				Msg("decryption failed")
		}
		return err
	}

	logger.Info().
		Str("receiver_id", msg.ReceiverID).
		Hex("nonce", msg.Nonce).
		Msg("decrypted")

	fmt.Println(msg.Content)
	return nil
}

// stageLogger forwards pipeline stage reports to zerolog.
type stageLogger struct {
	log zerolog.Logger
}

func (s stageLogger) ReportStage(r wecomkit.StageReport) {
	s.log.Info().Str("stage", string(r.Stage)).Msg(r.Detail)
}
