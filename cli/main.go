package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pixelarchive/xmptool/core"
	"github.com/pixelarchive/xmptool/core/flickr"
	"github.com/pixelarchive/xmptool/core/xmpfile"
)

type options struct {
	path      string // input file or directory
	read      bool   // extract schema fields to CSV
	write     bool   // commit writes; absent = dry run
	importCSV string // CSV to import, mutually exclusive with flickrDir
	flickrDir string // directory of Flickr sidecar JSON files
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("xmptool", flag.ContinueOnError)
	var o options

	fs.StringVar(&o.path, "p", "", "path to input file or directory")
	fs.StringVar(&o.path, "path", "", "path to input file or directory")
	fs.BoolVar(&o.read, "r", false, "extract XMP metadata and save to a csv file")
	fs.BoolVar(&o.read, "read", false, "extract XMP metadata and save to a csv file")
	fs.BoolVar(&o.write, "w", false, "embed XMP metadata in files (without this, writes are a dry run)")
	fs.BoolVar(&o.write, "write", false, "embed XMP metadata in files (without this, writes are a dry run)")
	fs.StringVar(&o.importCSV, "i", "", "path to csv file with XMP metadata to import")
	fs.StringVar(&o.importCSV, "import_csv", "", "path to csv file with XMP metadata to import")
	fs.StringVar(&o.flickrDir, "f", "", "path to directory with flickr json files to merge")
	fs.StringVar(&o.flickrDir, "flickr", "", "path to directory with flickr json files to merge")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.path == "" {
		return nil, errors.New("-p/--path is required")
	}
	if o.importCSV != "" && o.flickrDir != "" {
		return nil, errors.New("-i/--import_csv and -f/--flickr are mutually exclusive")
	}
	if !o.read && o.importCSV == "" && o.flickrDir == "" {
		return nil, errors.New("nothing to do: pass -r, -i or -f")
	}
	return &o, nil
}

func newLogger() *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	enc := zapcore.NewConsoleEncoder(encCfg)
	return zap.New(zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zap.WarnLevel))
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		core.PrintError(err.Error())
		os.Exit(1)
	}

	logger := newLogger()
	defer logger.Sync()

	if err := run(logger, opts); err != nil {
		core.PrintError(err.Error())
		os.Exit(1)
	}
}

func run(logger *zap.Logger, opts *options) error {
	files, err := core.ResolveFiles(opts.path)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("no image files found under", opts.path)
		return nil
	}

	eng := xmpfile.New(logger)
	rep := core.NewReport()

	switch {
	case opts.flickrDir != "":
		flickr.Merge(logger, eng, files, opts.flickrDir, opts.write, rep)
	case opts.importCSV != "":
		if err := core.Import(logger, eng, opts.importCSV, files, opts.write, rep); err != nil {
			return err
		}
	}

	if opts.read {
		records := core.Extract(logger, eng, files, rep)
		out, err := writeCSV(opts.path, records)
		if err != nil {
			return err
		}
		core.PrintSuccess("wrote " + out)
	}

	rep.Print(os.Stdout)
	return nil
}

// writeCSV saves extracted records next to the input: in the directory
// itself, or beside a single input file.
func writeCSV(inputPath string, records []core.ImageRecord) (string, error) {
	dir := inputPath
	if info, err := os.Stat(inputPath); err == nil && !info.IsDir() {
		dir = filepath.Dir(inputPath)
	}

	out := filepath.Join(dir, core.OutputName)
	f, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()

	if err := core.WriteRecords(f, records); err != nil {
		return "", err
	}
	return out, nil
}
