package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"resumeai/internal/config"
	"resumeai/internal/generate"
	"resumeai/internal/genreq"
	"resumeai/internal/github"
	"resumeai/internal/input"
	"resumeai/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a resume from career sources",
	Long: `Aggregates the provided sources (free text, an uploaded PDF or TXT file,
public repositories), sends them to the generative model, and stores the
resulting document as the current state.

At least one of --text, --file, or --github-user with --repos is required.
A job description alone only tailors the output; it is not a source.`,
	RunE: runGenerate,
}

var (
	genConfigPath string
	genText       string
	genTextFile   string
	genFile       string
	genJobFile    string
	genGithubUser string
	genRepos      []string
	genAPIKey     string
	genModel      string
	genStateDir   string
)

func init() {
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	generateCmd.Flags().StringVar(&genText, "text", "", "Career background as free text")
	generateCmd.Flags().StringVar(&genTextFile, "text-file", "", "Path to a text file with career background")
	generateCmd.Flags().StringVarP(&genFile, "file", "f", "", "Path to an existing resume (PDF or TXT)")
	generateCmd.Flags().StringVarP(&genJobFile, "job", "j", "", "Path to a target job description text file")
	generateCmd.Flags().StringVar(&genGithubUser, "github-user", "", "GitHub username to scan repositories from")
	generateCmd.Flags().StringSliceVar(&genRepos, "repos", nil, "Repository names to include (requires --github-user)")
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	generateCmd.Flags().StringVar(&genModel, "model", "", "Gemini model name")
	generateCmd.Flags().StringVar(&genStateDir, "state-dir", "", "Directory for persisted document state")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd, genConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = genAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = genModel
	}
	if cmd.Flags().Changed("state-dir") {
		cfg.StateDir = genStateDir
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	src, ghClient, err := collectSources(ctx, cfg)
	if err != nil {
		return err
	}

	combined, err := input.Aggregate(ctx, src, ghClient)
	if err != nil {
		return err
	}

	req, err := genreq.Build(combined)
	if err != nil {
		return err
	}

	gen, err := generate.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}
	defer func() { _ = gen.Close() }()

	fmt.Fprintln(os.Stderr, "Generating resume...")
	doc, err := gen.Generate(ctx, req)
	if err != nil {
		return err
	}

	st := store.New(cfg.StateDir)
	st.Load()
	if err := st.SetDocument(doc); err != nil {
		return err
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	fmt.Println(string(out))
	fmt.Fprintf(os.Stderr, "Document saved to %s\n", filepath.Join(cfg.StateDir, store.DocumentFileName))
	return nil
}

// collectSources builds the aggregation inputs from the CLI flags.
func collectSources(ctx context.Context, cfg config.Config) (input.Sources, *github.Client, error) {
	var src input.Sources

	src.Text = genText
	if genTextFile != "" {
		raw, err := os.ReadFile(genTextFile)
		if err != nil {
			return src, nil, fmt.Errorf("failed to read text file: %w", err)
		}
		if src.Text != "" {
			src.Text += "\n\n"
		}
		src.Text += string(raw)
	}

	if genJobFile != "" {
		raw, err := os.ReadFile(genJobFile)
		if err != nil {
			return src, nil, fmt.Errorf("failed to read job description: %w", err)
		}
		src.JobDescription = string(raw)
	}

	if genFile != "" {
		raw, err := os.ReadFile(genFile)
		if err != nil {
			return src, nil, fmt.Errorf("failed to read resume file: %w", err)
		}
		mime := input.MimeText
		if strings.EqualFold(filepath.Ext(genFile), ".pdf") {
			mime = input.MimePDF
		}
		src.File = &input.UploadedFile{
			Name:     filepath.Base(genFile),
			MimeType: mime,
			Content:  raw,
		}
	}

	ghClient := github.NewClient()
	if cfg.GithubBaseURL != "" {
		ghClient = github.NewClientWithBaseURL(cfg.GithubBaseURL)
	}

	if genGithubUser != "" && len(genRepos) > 0 {
		listed, err := ghClient.ListRepos(ctx, genGithubUser)
		if err != nil {
			return src, nil, err
		}

		wanted := make(map[string]bool, len(genRepos))
		for _, name := range genRepos {
			wanted[strings.ToLower(strings.TrimSpace(name))] = true
		}

		var selected []github.Repo
		for _, repo := range listed {
			if wanted[strings.ToLower(repo.Name)] {
				selected = append(selected, repo)
			}
		}
		if len(selected) == 0 {
			return src, nil, fmt.Errorf("none of the requested repositories were found for user %s", genGithubUser)
		}

		src.Github = &input.RepoSelection{Username: genGithubUser, Repos: selected}
	}

	return src, ghClient, nil
}
