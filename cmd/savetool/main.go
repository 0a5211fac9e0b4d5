package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/suparena/savefile"
	"github.com/suparena/savefile/chunk"
	"github.com/suparena/savefile/provider"
	"github.com/suparena/savefile/provider/ddbio"
	"github.com/suparena/savefile/provider/flatec"
	"github.com/suparena/savefile/provider/fsio"
	"github.com/suparena/savefile/provider/gzipc"
	"github.com/suparena/savefile/provider/httpio"
	"github.com/suparena/savefile/provider/jsoncodec"
	"github.com/suparena/savefile/provider/miniostore"
	"github.com/suparena/savefile/provider/yamlcodec"
	"github.com/suparena/savefile/provider/zstdc"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")

	filePath = flag.String("file", "", "Save artifact file path")
	url      = flag.String("url", "", "Save artifact URL (HTTP backend)")
	ddbTable = flag.String("ddb-table", "", "DynamoDB table name (DynamoDB backend)")
	ddbKey   = flag.String("ddb-key", "", "Save key within the DynamoDB table")
	s3Bucket = flag.String("s3-bucket", "", "Bucket name (S3-compatible backend)")
	s3Object = flag.String("s3-object", "", "Object key within the bucket")

	codecName    = flag.String("codec", "json", "Serializer: json or yaml")
	compressName = flag.String("compress", "none", "Compressor: none, gzip, flate or zstd")
	levelName    = flag.String("level", "optimal", "Compression level: fastest, optimal or smallest")
)

const usage = `Usage: savetool [flags] <command>

Commands:
  save     read a document from stdin and save it to the configured backend
  load     load the saved document and print it to stdout
  exists   report whether a save artifact exists
  delete   remove the save artifact (no-op if absent)
`

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := savefile.GetVersionInfo()
		fmt.Printf("SaveFile savetool version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	// Backend credentials come from the environment; a .env file is
	// honored when present.
	_ = godotenv.Load()

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "savetool: %v\n", err)
		os.Exit(1)
	}
}

// document is the save payload for the tool: one free-form document read from
// stdin on save and printed on load.
type document map[string]any

func run(command string) error {
	var loaded document
	root := chunk.New(
		func(c *chunk.SaveChunk[document]) (document, error) {
			return readStdin()
		},
		func(c *chunk.SaveChunk[document], d document) error {
			loaded = d
			return nil
		})

	opts, err := buildOptions()
	if err != nil {
		return err
	}
	sf, err := savefile.New(root, opts...)
	if err != nil {
		return err
	}

	ctx := context.Background()
	switch command {
	case "save":
		return sf.SaveContext(ctx)
	case "load":
		if err := sf.LoadContext(ctx); err != nil {
			return err
		}
		if loaded == nil {
			fmt.Println("no saved data")
			return nil
		}
		return jsoncodec.NewWithOptions(jsoncodec.Options{IndentionStep: 2}).Serialize(os.Stdout, loaded)
	case "exists":
		ok, err := sf.ExistsContext(ctx)
		if err != nil {
			return err
		}
		fmt.Println(ok)
		return nil
	case "delete":
		return sf.DeleteContext(ctx)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func readStdin() (document, error) {
	var d document
	found, err := jsoncodec.New().Deserialize(os.Stdin, &d)
	if err != nil {
		return nil, err
	}
	if !found {
		return document{}, nil
	}
	return d, nil
}

func buildOptions() ([]savefile.Option[document], error) {
	var opts []savefile.Option[document]

	switch {
	case *filePath != "":
		opts = append(opts, savefile.WithStreamProvider[document](fsio.New(*filePath)))
	case *url != "":
		opts = append(opts, savefile.WithStreamProviderContext[document](httpio.New(*url)))
	case *ddbTable != "":
		client, err := ddbio.NewDynamoDBClient(
			os.Getenv("AWS_ACCESS_KEY_ID"),
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			os.Getenv("AWS_REGION"))
		if err != nil {
			return nil, err
		}
		p, err := ddbio.New(client, *ddbTable, *ddbKey)
		if err != nil {
			return nil, err
		}
		opts = append(opts, savefile.WithStreamProviderContext[document](p))
	case *s3Bucket != "":
		client, err := miniostore.NewClient(
			os.Getenv("S3_ENDPOINT"),
			os.Getenv("S3_ACCESS_KEY"),
			os.Getenv("S3_SECRET_KEY"),
			os.Getenv("S3_SECURE") == "true")
		if err != nil {
			return nil, err
		}
		p, err := miniostore.New(client, *s3Bucket, *s3Object)
		if err != nil {
			return nil, err
		}
		opts = append(opts, savefile.WithStreamProviderContext[document](p))
	default:
		return nil, fmt.Errorf("one of -file, -url, -ddb-table or -s3-bucket is required")
	}

	switch *codecName {
	case "json":
		opts = append(opts, savefile.WithSerializer[document](jsoncodec.New()))
	case "yaml":
		opts = append(opts, savefile.WithSerializer[document](yamlcodec.New()))
	default:
		return nil, fmt.Errorf("unknown codec %q", *codecName)
	}

	switch *compressName {
	case "none":
	case "gzip":
		opts = append(opts, savefile.WithCompressor[document](gzipc.New()))
	case "flate":
		opts = append(opts, savefile.WithCompressor[document](flatec.New()))
	case "zstd":
		opts = append(opts, savefile.WithCompressor[document](zstdc.New()))
	default:
		return nil, fmt.Errorf("unknown compressor %q", *compressName)
	}

	switch *levelName {
	case "fastest":
		opts = append(opts, savefile.WithCompressionLevel[document](provider.Fastest))
	case "optimal":
		opts = append(opts, savefile.WithCompressionLevel[document](provider.Optimal))
	case "smallest":
		opts = append(opts, savefile.WithCompressionLevel[document](provider.Smallest))
	default:
		return nil, fmt.Errorf("unknown level %q", *levelName)
	}

	return opts, nil
}
