package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Fantasim/xmrvault/internal/config"
	"github.com/Fantasim/xmrvault/internal/logging"
	"github.com/Fantasim/xmrvault/internal/mnemonic"
	"github.com/Fantasim/xmrvault/internal/models"
	"github.com/Fantasim/xmrvault/internal/wallet"
	"github.com/Fantasim/xmrvault/internal/wordlist"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "create":
		err = runCreate(os.Args[2:])
	case "recover":
		err = runRecover(os.Args[2:])
	case "seed":
		err = runSeed(os.Args[2:])
	case "import-key":
		err = runImportKey(os.Args[2:])
	case "watch":
		err = runWatch(os.Args[2:])
	case "inspect":
		err = runInspect(os.Args[2:])
	case "version":
		fmt.Printf("xmrvault %s\n", version)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		slog.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: xmrvault <command>

Commands:
  create      Generate a new wallet from a fresh random mnemonic
  recover     Rebuild a wallet from an existing mnemonic phrase
  seed        Rebuild a wallet from raw seed bytes (hex)
  import-key  Rebuild a wallet from a private spend key (hex)
  watch       Build a watch-only wallet from view key + public spend key
  inspect     Decode a mnemonic and report its seed and language
  version     Print version information
`)
}

// setup loads config and wires logging; the returned closer owns the log file.
func setup() (*config.Config, io.Closer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	closer, err := logging.Setup(cfg.LogLevel, cfg.LogDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to setup logging: %w", err)
	}

	return cfg, closer, nil
}

func runCreate(args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	name := fs.String("name", config.DefaultWalletName, "wallet name")
	words := fs.Int("words", 0, "mnemonic word count: 12, 13, 24 or 25 (default from config)")
	lang := fs.String("language", "", "mnemonic language (default from config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, closer, err := setup()
	if err != nil {
		return err
	}
	defer closer.Close()

	if *words == 0 {
		*words = cfg.WordsCount
	}
	if *lang == "" {
		*lang = cfg.Language
	}

	w, err := wallet.CreateRandom(*name, mnemonic.WordsCount(*words), wordlist.Language(*lang))
	if err != nil {
		return err
	}

	return printWallet(w)
}

func runRecover(args []string) error {
	fs := flag.NewFlagSet("recover", flag.ExitOnError)
	name := fs.String("name", config.DefaultWalletName, "wallet name")
	phrase := fs.String("phrase", "", "mnemonic phrase")
	file := fs.String("file", "", "file containing the mnemonic phrase")
	if err := fs.Parse(args); err != nil {
		return err
	}

	_, closer, err := setup()
	if err != nil {
		return err
	}
	defer closer.Close()

	m, err := resolvePhrase(*phrase, *file)
	if err != nil {
		return err
	}

	w, err := wallet.CreateFromMnemonic(*name, m)
	if err != nil {
		return err
	}

	return printWallet(w)
}

func runSeed(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	name := fs.String("name", config.DefaultWalletName, "wallet name")
	seedHex := fs.String("seed", "", "seed bytes in hex (16 or 32 bytes)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	_, closer, err := setup()
	if err != nil {
		return err
	}
	defer closer.Close()

	seed, err := hex.DecodeString(*seedHex)
	if err != nil {
		return fmt.Errorf("seed is not valid hex: %w", err)
	}

	w, err := wallet.CreateFromSeed(*name, seed)
	if err != nil {
		return err
	}

	return printWallet(w)
}

func runImportKey(args []string) error {
	fs := flag.NewFlagSet("import-key", flag.ExitOnError)
	name := fs.String("name", config.DefaultWalletName, "wallet name")
	keyHex := fs.String("key", "", "private spend key in hex")
	if err := fs.Parse(args); err != nil {
		return err
	}

	_, closer, err := setup()
	if err != nil {
		return err
	}
	defer closer.Close()

	key, err := hex.DecodeString(*keyHex)
	if err != nil {
		return fmt.Errorf("key is not valid hex: %w", err)
	}

	w, err := wallet.CreateFromPrivateKey(*name, key)
	if err != nil {
		return err
	}

	return printWallet(w)
}

func runWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	name := fs.String("name", config.DefaultWalletName, "wallet name")
	viewHex := fs.String("view", "", "private view key in hex")
	spendHex := fs.String("spend", "", "public spend key in hex")
	if err := fs.Parse(args); err != nil {
		return err
	}

	_, closer, err := setup()
	if err != nil {
		return err
	}
	defer closer.Close()

	view, err := hex.DecodeString(*viewHex)
	if err != nil {
		return fmt.Errorf("view key is not valid hex: %w", err)
	}
	spend, err := hex.DecodeString(*spendHex)
	if err != nil {
		return fmt.Errorf("spend key is not valid hex: %w", err)
	}

	w, err := wallet.CreateFromWatchOnly(*name, view, spend)
	if err != nil {
		return err
	}

	return printWallet(w)
}

func runInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	phrase := fs.String("phrase", "", "mnemonic phrase")
	file := fs.String("file", "", "file containing the mnemonic phrase")
	if err := fs.Parse(args); err != nil {
		return err
	}

	_, closer, err := setup()
	if err != nil {
		return err
	}
	defer closer.Close()

	m, err := resolvePhrase(*phrase, *file)
	if err != nil {
		return err
	}

	seed, lang, err := mnemonic.Decode(m)
	if err != nil {
		return err
	}

	return printJSON(models.SeedReport{
		Words:    len(strings.Fields(m)),
		Language: string(lang),
		Seed:     hex.EncodeToString(seed),
	})
}

func resolvePhrase(phrase, file string) (string, error) {
	switch {
	case phrase != "" && file != "":
		return "", errors.New("use either -phrase or -file, not both")
	case phrase != "":
		return phrase, nil
	case file != "":
		return mnemonic.ReadFromFile(file)
	default:
		return "", errors.New("a mnemonic is required: pass -phrase or -file")
	}
}

func printWallet(w *wallet.Wallet) error {
	export := models.WalletExport{
		Name:           w.Name(),
		WatchOnly:      !w.CanSpend(),
		PrivateViewKey: hex.EncodeToString(w.PrivateViewKey()),
		PublicSpendKey: hex.EncodeToString(w.PublicSpendKey()),
		PublicViewKey:  hex.EncodeToString(w.PublicViewKey()),
		PrimaryAddress: w.PrimaryAddress(),
	}

	if key, ok := w.PrivateSpendKey(); ok {
		export.PrivateSpendKey = hex.EncodeToString(key)
	}
	if phrase, ok := w.Mnemonic(); ok {
		export.Mnemonic = phrase
	}
	if seed, ok := w.Seed(); ok {
		export.Seed = hex.EncodeToString(seed)
	}

	return printJSON(export)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
