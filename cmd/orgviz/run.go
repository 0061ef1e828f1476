package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/spf13/cobra"

	"github.com/orgviz/orgviz/internal/summary"
	"github.com/orgviz/orgviz/internal/util"
	"github.com/orgviz/orgviz/pkg/common"
	"github.com/orgviz/orgviz/pkg/graph"
	"github.com/orgviz/orgviz/pkg/loader"
	ioloader "github.com/orgviz/orgviz/pkg/loader/io"
	s3loader "github.com/orgviz/orgviz/pkg/loader/s3"
	"github.com/orgviz/orgviz/pkg/logger"
	"github.com/orgviz/orgviz/pkg/writer"
)

const s3Prefix = "s3://"

// parseS3Ref splits s3://bucket/key into its parts. Refs without the
// scheme are local paths.
func parseS3Ref(ref string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(ref, s3Prefix)
	slash := strings.Index(rest, "/")
	if slash <= 0 || slash == len(rest)-1 {
		return "", "", fmt.Errorf("invalid S3 reference %q, expected s3://bucket/key", ref)
	}
	return rest[:slash], rest[slash+1:], nil
}

func loaderFor(ctx context.Context, ref string) (loader.DocumentLoader, string, error) {
	if !strings.HasPrefix(ref, s3Prefix) {
		return ioloader.NewDocumentLoader(), ref, nil
	}

	bucket, key, err := parseS3Ref(ref)
	if err != nil {
		return nil, "", err
	}
	l, err := s3loader.NewDocumentLoader(ctx, s3loader.NewDocumentLoaderParams{
		Bucket:    bucket,
		Endpoint:  util.GetEnv("AWS_ENDPOINT"),
		Region:    util.GetEnv("AWS_REGION"),
		AccessKey: util.GetEnv("AWS_ACCESS_KEY"),
		SecretKey: util.GetEnv("AWS_SECRET_KEY"),
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create S3 loader: %w", err)
	}
	return l, key, nil
}

func writerFor(ctx context.Context, ref string) (writer.Writer, string, error) {
	if !strings.HasPrefix(ref, s3Prefix) {
		return writer.NewFileWriter(), ref, nil
	}

	bucket, key, err := parseS3Ref(ref)
	if err != nil {
		return nil, "", err
	}
	w, err := writer.NewS3WriterFromParams(ctx, writer.NewS3WriterParams{
		Bucket:    bucket,
		Endpoint:  util.GetEnv("AWS_ENDPOINT"),
		Region:    util.GetEnv("AWS_REGION"),
		AccessKey: util.GetEnv("AWS_ACCESS_KEY"),
		SecretKey: util.GetEnv("AWS_SECRET_KEY"),
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create S3 writer: %w", err)
	}
	return w, key, nil
}

// runTransform is the shared pipeline: load, decode, build, encode,
// write, summarize. The document is built fully in memory before anything
// is written, so a failed run never leaves partial output behind.
func runTransform(cmd *cobra.Command, variant summary.Variant, build func(*common.SourceGraph) *graph.Result) error {
	ctx := cmd.Context()
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")

	runID, err := gonanoid.New()
	if err != nil {
		return err
	}
	start := time.Now()

	logger.Info("Loading graph document", "run_id", runID, "input", input)

	docLoader, inputRef, err := loaderFor(ctx, input)
	if err != nil {
		return err
	}
	doc, err := loader.Load(ctx, docLoader, inputRef)
	if err != nil {
		return err
	}

	logger.Info("Building graph", "run_id", runID, "variant", string(variant),
		"people", len(doc.Nodes), "relationships", len(doc.Edges))

	result := build(doc)
	if result.DroppedEdges > 0 {
		logger.Debug("Dropped edges with unknown endpoints",
			"run_id", runID, "count", result.DroppedEdges)
	}

	data, err := writer.Encode(result.Graph)
	if err != nil {
		return err
	}

	docWriter, outputRef, err := writerFor(ctx, output)
	if err != nil {
		return err
	}
	if err := docWriter.Put(ctx, outputRef, data); err != nil {
		return err
	}

	summary.Render(cmd.OutOrStdout(), summary.Run{
		Variant: variant,
		Output:  output,
		Result:  result,
	})

	logger.Info("Transformation complete", "run_id", runID,
		"nodes", len(result.Graph.Nodes), "edges", len(result.Graph.Edges),
		"duration", time.Since(start).Round(time.Millisecond).String())

	return nil
}
