package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"resume-portal/resume/model"
	"resume-portal/resume/pdftext"
	"resume-portal/resume/render"
)

type renderOptions struct {
	template string
	layout   string
	in       string
	out      string
	sample   bool
	verify   bool
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one resume to a PDF file",
		Long:  "Renders the resume in --in (or the built-in sample with --sample) using --template and writes it to --out.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.template, "template", "t", string(model.DefaultTemplate), "Template name")
	cmd.Flags().StringVarP(&opts.layout, "layout", "l", string(model.LayoutSingleColumn), "Layout (single-column or two-column)")
	cmd.Flags().StringVarP(&opts.in, "in", "i", "", "Path to input JSON with \"student\" and \"resume\" objects")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Path to output PDF file (required)")
	cmd.Flags().BoolVar(&opts.sample, "sample", false, "Render the built-in sample resume")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "Extract text from the output and check the student name appears")

	if err := cmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}
	cmd.MarkFlagsMutuallyExclusive("in", "sample")
	return cmd
}

func runRender(cmd *cobra.Command, opts renderOptions) error {
	var (
		data model.ResumeData
		info model.StudentInfo
	)
	switch {
	case opts.sample:
		data, info = sampleInput()
	case opts.in != "":
		var err error
		data, info, err = loadInput(opts.in)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("one of --in or --sample is required")
	}

	res, err := renderToFile(cmd.Context(), render.NewRenderer(), opts.out, data, info, opts.template, opts.layout)
	if err != nil {
		return err
	}
	if res.Degraded {
		return fmt.Errorf("template %s failed, wrote error document: %v", res.Template, res.RenderErr)
	}
	if opts.verify {
		if err := verifyPDF(cmd.Context(), opts.out, info.Normalize().Name); err != nil {
			return err
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "OK: wrote %s (%s, %s, %d bytes)\n", opts.out, res.Template, res.Layout, res.Bytes)
	return nil
}

func newRenderAllCmd() *cobra.Command {
	var (
		outDir string
		layout string
		verify bool
	)
	cmd := &cobra.Command{
		Use:   "render-all",
		Short: "Render the sample resume with every template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			data, info := sampleInput()
			r := render.NewRenderer()
			var failed []string
			for _, tpl := range r.Templates() {
				out := filepath.Join(outDir, model.FileName(info.Name, string(tpl)))
				res, err := renderToFile(cmd.Context(), r, out, data, info, string(tpl), layout)
				if err != nil {
					return err
				}
				if res.Degraded {
					failed = append(failed, string(tpl))
					continue
				}
				if verify {
					if err := verifyPDF(cmd.Context(), out, info.Name); err != nil {
						return err
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "OK: %s\n", out)
			}
			if len(failed) > 0 {
				return fmt.Errorf("templates failed: %s", strings.Join(failed, ", "))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out-dir", "o", "./out", "Directory for the rendered PDFs")
	cmd.Flags().StringVarP(&layout, "layout", "l", string(model.LayoutSingleColumn), "Layout (single-column or two-column)")
	cmd.Flags().BoolVar(&verify, "verify", false, "Check each PDF contains the student name")
	return cmd
}

func renderToFile(ctx context.Context, r *render.Renderer, path string, data model.ResumeData, info model.StudentInfo, template, layout string) (render.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return render.Result{}, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return render.Result{}, fmt.Errorf("failed to create output file: %w", err)
	}
	// Render closes f.
	res, err := r.Render(ctx, f, data, info, template, layout)
	if err != nil {
		return res, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return res, nil
}

func verifyPDF(ctx context.Context, path, name string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	text, err := pdftext.Text(ctx, raw)
	if err != nil {
		return fmt.Errorf("failed to extract text from %s: %w", path, err)
	}
	if !strings.Contains(strings.ToLower(text), strings.ToLower(name)) {
		return fmt.Errorf("verification failed: %q not found in %s", name, path)
	}
	return nil
}
