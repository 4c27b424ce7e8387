package batch

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/wayming/jsonconv/common"
	"github.com/wayming/jsonconv/jclogger"
	"github.com/wayming/jsonconv/json2tab"
)

// BatchConverter converts every *.json file in a directory into a .sql
// or .csv sibling, fanning the files out over N goroutines. The file base
// name becomes the table name.
type BatchConverter struct {
	dir    string
	format json2tab.Format
}

type Result struct {
	File    string
	Records int
	Err     error
}

func NewBatchConverter(dir string, format json2tab.Format) *BatchConverter {
	return &BatchConverter{dir: dir, format: format}
}

func (b *BatchConverter) Execute(parallel int) error {
	files, err := filepath.Glob(filepath.Join(b.dir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", b.dir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no json files found under %s", b.dir)
	}
	if parallel < 1 {
		parallel = 1
	}

	inChan := make(chan string, len(files))
	outChan := make(chan Result, len(files))
	for _, file := range files {
		inChan <- file
	}
	close(inChan)

	var wg sync.WaitGroup
	for i := 0; i < parallel; i++ {
		wg.Add(1)
		go b.workerRoutine(strconv.Itoa(i), inChan, outChan, &wg)
	}
	go func() {
		wg.Wait()
		close(outChan)
	}()

	nProcessed := 0
	nSucceeded := 0
	errs := make(map[string]error)
	for resp := range outChan {
		nProcessed++
		if resp.Err != nil {
			errs[resp.File] = resp.Err
			jclogger.JCLoggerInstance.Printf("Failed to convert %s. Error: %s", resp.File, resp.Err.Error())
		} else {
			nSucceeded++
			jclogger.JCLoggerInstance.Printf("Converted %s (%d records)", resp.File, resp.Records)
		}
	}

	jclogger.JCLoggerInstance.Printf("Batch summary: total %d, processed %d, succeeded %d", len(files), nProcessed, nSucceeded)
	for _, file := range common.SortedKeys(errs) {
		jclogger.JCLoggerInstance.Printf("  %s: %s", file, errs[file].Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d files failed to convert", len(errs), len(files))
	}
	return nil
}

func (b *BatchConverter) workerRoutine(goID string, inChan chan string, outChan chan Result, wg *sync.WaitGroup) {
	defer wg.Done()

	logger := log.New(os.Stderr, "jsonconv: ", log.Ldate|log.Ltime)
	logMessage := func(text string) {
		logger.Println("[Go" + goID + "] " + text)
	}
	logMessage("Begin")

	for file := range inChan {
		logMessage("Begin processing [" + file + "]")
		records, err := b.convertFile(file)
		outChan <- Result{File: file, Records: records, Err: err}
		if err != nil {
			logMessage("End processing [" + file + "]. " + err.Error())
		} else {
			logMessage("End processing [" + file + "]. Succeeded.")
		}
	}

	logMessage("Finish")
}

func (b *BatchConverter) convertFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	value, err := json2tab.ParseValue(string(data))
	if err != nil {
		return 0, err
	}
	records, _ := json2tab.Flatten(value)

	tableName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	artifact, err := json2tab.Generate(records, b.format, tableName)
	if err != nil {
		return 0, err
	}

	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + "." + string(b.format)
	if err := os.WriteFile(outPath, []byte(artifact), 0644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return len(records), nil
}
