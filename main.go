package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wayming/jsonconv/batch"
	"github.com/wayming/jsonconv/cache"
	"github.com/wayming/jsonconv/config"
	"github.com/wayming/jsonconv/dbstore"
	"github.com/wayming/jsonconv/json2tab"
	"github.com/wayming/jsonconv/service"
)

func main() {

	inOpt := flag.String("in", "",
		"Convert a single JSON file. Reads stdin when set to '-'.")
	formatOpt := flag.String("format", "sql",
		"Output format. Supported options include:\n"+
			"sql: CREATE TABLE plus one INSERT per record.\n"+
			"csv: header row plus one row per record.")
	tableOpt := flag.String("table", config.DEFAULT_TABLE_NAME, "Table name for SQL output.")
	outOpt := flag.String("out", "", "Output file. Defaults to stdout.")
	dirOpt := flag.String("dir", "", "Convert every *.json file in the directory.")
	parallelOpt := flag.Int("parallel", 1, "Parallel streams for directory conversion.")
	serveOpt := flag.Bool("serve", false, "Start the conversion HTTP service.")
	configOpt := flag.String("config", "", "YAML config file for serve mode.")

	flag.Parse()

	format := json2tab.Format(strings.ToLower(*formatOpt))
	if format != json2tab.FormatSQL && format != json2tab.FormatCSV {
		fmt.Println("Unknown format option " + *formatOpt)
		os.Exit(1)
	}

	switch {
	case *serveOpt:
		if err := serve(*configOpt); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
	case *dirOpt != "":
		converter := batch.NewBatchConverter(*dirOpt, format)
		if err := converter.Execute(*parallelOpt); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
		fmt.Println("All files were converted")
	case *inOpt != "":
		if err := convertOne(*inOpt, format, *tableOpt, *outOpt); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
	default:
		flag.Usage()
		os.Exit(1)
	}
	os.Exit(0)
}

func convertOne(in string, format json2tab.Format, tableName string, out string) error {
	var data []byte
	var err error
	if in == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(in)
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	value, err := json2tab.ParseValue(string(data))
	if err != nil {
		return err
	}
	records, _ := json2tab.Flatten(value)
	artifact, err := json2tab.Generate(records, format, tableName)
	if err != nil {
		return err
	}

	if out == "" {
		fmt.Println(artifact)
		return nil
	}
	return os.WriteFile(out, []byte(artifact), 0644)
}

func serve(configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	store := dbstore.NewPGStore()
	if err := store.Connect(cfg.Store.Host, cfg.Store.Port, cfg.Store.User, cfg.Store.Password, cfg.Store.DBName); err != nil {
		return err
	}
	defer store.Disconnect()
	if err := store.EnsureSchema(); err != nil {
		return err
	}

	cacheManager := cache.NewCacheManager()
	if err := cacheManager.Connect(cfg.Cache.Host, cfg.Cache.Port); err != nil {
		return err
	}
	defer cacheManager.Disconnect()

	server := service.NewServer(cfg.Server, store, cacheManager)
	return server.ListenAndServe()
}
