package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resumeai/internal/export"
	"resumeai/internal/render"
	"resumeai/internal/resume"
	"resumeai/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current resume document",
	Long: `Renders the stored document with the selected layout and writes a PDF,
DOCX, or prefilled email draft. PDF export requires a local Chrome or
Chromium (override the binary with CHROME_PATH).`,
	RunE: runExport,
}

var (
	exportConfigPath string
	exportFormat     string
	exportTemplate   string
	exportOut        string
	exportTo         string
	exportStateDir   string
	exportCover      bool
)

func init() {
	exportCmd.Flags().StringVar(&exportConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "pdf", "Export format: pdf, docx, email, or html")
	exportCmd.Flags().StringVarP(&exportTemplate, "template", "t", "", "Layout variant to render (defaults to the stored selection)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output path (defaults to Resume_<Name>.<ext> in the working directory)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "Recipient address for the email draft format (defaults to the document's email)")
	exportCmd.Flags().StringVar(&exportStateDir, "state-dir", "", "Directory for persisted document state")
	exportCmd.Flags().BoolVar(&exportCover, "cover-letter", false, "Render the cover letter instead of the resume")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, exportConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("state-dir") {
		cfg.StateDir = exportStateDir
	}

	st := store.New(cfg.StateDir)
	st.Load()
	doc := st.Document()
	theme := st.Theme()

	if exportFormat == "email" {
		to := exportTo
		if to == "" {
			to = doc.PersonalInfo.Email
		}
		if to == "" {
			return fmt.Errorf("no recipient address: the document has no email and --to was not given")
		}
		draft := export.ComposeEmail(doc, to)
		out, err := json.MarshalIndent(draft, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize email draft: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	renderer, err := render.New()
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}

	var rendered *render.Rendered
	if exportCover {
		rendered, err = renderer.RenderCoverLetter(doc, theme)
	} else {
		sel := st.Template()
		if exportTemplate != "" {
			sel = resume.ParseTemplateType(exportTemplate)
		}
		rendered, err = renderer.Render(doc, theme, sel)
	}
	if err != nil {
		return err
	}

	switch exportFormat {
	case "html":
		return writeExport(exportOut, export.Filename(doc.PersonalInfo.FullName, "html"), []byte(rendered.HTML))

	case "pdf":
		pdf, err := export.NewPDFExporter().Export(context.Background(), rendered.HTML)
		if err != nil {
			return err
		}
		return writeExport(exportOut, export.Filename(doc.PersonalInfo.FullName, "pdf"), pdf)

	case "docx":
		docx, err := export.NewDocxExporter(theme.Color).Export(rendered.HTML)
		if err != nil {
			return err
		}
		return writeExport(exportOut, export.Filename(doc.PersonalInfo.FullName, "docx"), docx)

	default:
		return fmt.Errorf("unknown export format: %s", exportFormat)
	}
}

// writeExport writes data to the explicit path, or the default download
// name in the working directory.
func writeExport(path, fallback string, data []byte) error {
	if path == "" {
		path = fallback
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	return nil
}
