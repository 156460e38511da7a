package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"priorart/src/core/corpus"
	"priorart/src/storage/minioctrl"
)

var (
	corpusFile   string
	corpusObject string
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a patent corpus into the vector index",
	Long: `The ingest command loads patent records from a JSON file or a MinIO
object, chunks each record, embeds the chunks, and upserts the vectors
with their metadata into the Weaviate patent index.`,
	Run: func(cmd *cobra.Command, args []string) {
		if corpusFile == "" && corpusObject == "" {
			fmt.Println("Error: either a corpus file or a MinIO object is required")
			return
		}
		if corpusFile != "" && corpusObject != "" {
			fmt.Println("Error: cannot provide both a corpus file and a MinIO object")
			return
		}

		ctx := context.Background()

		patents, err := loadCorpus(ctx)
		if err != nil {
			fmt.Printf("Error loading corpus: %v\n", err)
			return
		}

		embedder, err := newEmbedder()
		if err != nil {
			fmt.Printf("Error initializing embedder: %v\n", err)
			return
		}

		index := newPatentIndex()
		if err := index.EnsureSchema(ctx); err != nil {
			fmt.Printf("Error ensuring index schema: %v\n", err)
			return
		}

		ingester := corpus.NewIngester(embedder, index)

		bar := progressbar.Default(int64(len(patents)), "ingesting patents")
		totalChunks := 0
		for _, patent := range patents {
			chunks, err := ingester.IngestPatent(ctx, patent)
			if err != nil {
				fmt.Printf("\nError ingesting patent %s: %v\n", patent.PatentID, err)
				return
			}
			totalChunks += chunks
			bar.Add(1)
		}

		fmt.Printf("\nIngestion complete: %d patents, %d chunks\n", len(patents), totalChunks)
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().StringVarP(&corpusFile, "file", "f", "", "path to a JSON corpus file")
	ingestCmd.Flags().StringVarP(&corpusObject, "minio-object", "m", "", "MinIO corpus object as bucket/key")
}

func loadCorpus(ctx context.Context) ([]corpus.Patent, error) {
	if corpusFile != "" {
		f, err := os.Open(corpusFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open corpus file: %w", err)
		}
		defer f.Close()

		return corpus.LoadPatents(f)
	}

	minioService, err := minioctrl.NewMinioService(
		viper.GetString("minio.endpoint"),
		viper.GetString("minio.access_key"),
		viper.GetString("minio.secret_key"),
		false,
	)
	if err != nil {
		return nil, err
	}

	bucket, object := minioService.SplitObjectURL(corpusObject)
	if bucket == "" || object == "" {
		return nil, fmt.Errorf("invalid MinIO object reference %q, expected bucket/key", corpusObject)
	}

	data, err := minioService.GetObject(ctx, bucket, object)
	if err != nil {
		return nil, err
	}

	return corpus.LoadPatents(bytes.NewReader(data))
}
