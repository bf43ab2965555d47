package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
)

const usage = `usage: bitmapgen <command> [flags]

commands:
  digits   render 0-9, ':' and '°' from a font into digit_bitmaps.h
  icons    convert *-<size>.png icons into weather_bitmaps.h
  preview  show the generated bitmaps on the serial LCD panel

Run "bitmapgen <command> -h" for the flags of a command.
`

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func run(cmd string, args []string) error {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	switch cmd {
	case "digits":
		cfg, err := parseConfig(fs, args)
		if err != nil {
			return err
		}
		return runDigits(cfg)
	case "icons":
		cfg, err := parseConfig(fs, args)
		if err != nil {
			return err
		}
		return runIcons(cfg)
	case "preview":
		icons := fs.Bool("icons", false, "include icons after the digits")
		cfg, err := parseConfig(fs, args)
		if err != nil {
			return err
		}
		return runPreview(cfg, *icons)
	case "-h", "help":
		fmt.Print(usage)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runDigits(cfg Config) error {
	log.Printf("Digital Bitmap Generator (From Font)")
	log.Printf("Output: %s", cfg.DigitsPath())
	data, err := GenerateDigits(cfg)
	if err != nil {
		return err
	}
	return writeOutput(cfg.DigitsPath(), data)
}

// runIcons renders every size before writing anything, so a bad icon leaves
// all existing headers untouched.
func runIcons(cfg Config) error {
	outputs := make([][]byte, len(cfg.IconSizes))
	for i, size := range cfg.IconSizes {
		data, err := GenerateIcons(cfg, size)
		if err != nil {
			return err
		}
		outputs[i] = data
	}
	for i, size := range cfg.IconSizes {
		if err := writeOutput(cfg.IconsPath(size), outputs[i]); err != nil {
			return err
		}
	}
	return nil
}
