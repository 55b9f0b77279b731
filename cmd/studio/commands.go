package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"shorts_studio/internal/domain"
	"shorts_studio/internal/review"
	"shorts_studio/internal/service"
)

type command struct {
	// exports is set for commands that need the export sinks connected.
	exports bool
	run     func(ctx context.Context, studio *service.Studio, args []string) error
}

var commands = map[string]command{
	"generate":  {run: runGenerate},
	"list":      {run: runList},
	"show":      {run: runShow},
	"select":    {run: runSelect},
	"edit":      {run: runEdit},
	"thumbnail": {run: runThumbnail},
	"save":      {run: runSave},
	"export":    {exports: true, run: runExport},
	"summary":   {run: runSummary},
	"favorite":  {run: runFavorite},
	"delete":    {run: runDelete},
	"stats":     {run: runStats},
}

var stdout io.Writer = os.Stdout

func runGenerate(ctx context.Context, studio *service.Studio, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	topic := fs.String("topic", "", "niche or topic to research (required)")
	keywords := fs.String("keywords", "", "comma separated keywords")
	audience := fs.String("audience", "General", "target audience: "+strings.Join(domain.Audiences, ", "))
	tone := fs.String("tone", "Educational", "content tone: "+strings.Join(domain.Tones, ", "))
	quiet := fs.Bool("quiet", false, "do not print progress")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := domain.GenerationRequest{
		Topic:    *topic,
		Keywords: strings.Split(*keywords, ","),
		Audience: *audience,
		Tone:     *tone,
	}

	var onProgress func(domain.Progress)
	if !*quiet {
		onProgress = printProgress(os.Stderr)
	}

	item, err := studio.Generate(ctx, req, onProgress)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "created %s (%d scripts)\n\n", item.ID, len(item.Scripts))
	fmt.Fprintln(stdout, review.BuildExportText(item))
	return nil
}

func printProgress(w io.Writer) func(domain.Progress) {
	return func(p domain.Progress) {
		if p.Done {
			fmt.Fprintf(w, "\r[100%%] done%s\n", strings.Repeat(" ", 32))
			return
		}
		fmt.Fprintf(w, "\r[%3.0f%%] %-36s", p.Percent, p.Message)
	}
}

func runList(_ context.Context, studio *service.Studio, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	query := fs.String("q", "", "search topic and niche")
	status := fs.String("status", "all", "all, draft, ready or exported")
	sort := fs.String("sort", string(service.SortNewest), "newest or oldest")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items, err := studio.List(service.Filter{
		Query:  *query,
		Status: *status,
		Sort:   service.SortOrder(*sort),
	})
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(stdout, "no content found")
		return nil
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tFAV\tCREATED\tTOPIC\tNICHE")
	for _, item := range items {
		fav := ""
		if item.IsFavorite {
			fav = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			item.ID, item.Status, fav, item.CreatedAt.Local().Format(time.DateTime), item.Topic, item.Niche)
	}
	return tw.Flush()
}

func runShow(_ context.Context, studio *service.Studio, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "print the stored JSON")
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	item, err := studio.Get(id)
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(item)
	}

	fmt.Fprintf(stdout, "%s  status=%s  favorite=%t\n\n", item.ID, item.Status, item.IsFavorite)
	for i, script := range item.Scripts {
		marker := " "
		if i == item.SelectedScriptIndex {
			marker = ">"
		}
		fmt.Fprintf(stdout, "%s %d. %s (%s)\n", marker, i+1, script.Title, script.EstimatedDuration)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, review.BuildExportText(item))
	return nil
}

func runSelect(ctx context.Context, studio *service.Studio, args []string) error {
	fs := flag.NewFlagSet("select", flag.ContinueOnError)
	script := fs.Int("script", 1, "script number, starting at 1")
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	item, err := studio.SelectScript(ctx, id, *script-1)
	if err != nil {
		return err
	}
	if *script < 1 || *script > len(item.Scripts) {
		return fmt.Errorf("item %s has %d scripts", id, len(item.Scripts))
	}
	fmt.Fprintf(stdout, "selected script %d: %s\n", *script, item.Scripts[item.SelectedScriptIndex].Title)
	return nil
}

func runEdit(ctx context.Context, studio *service.Studio, args []string) error {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	script := fs.Int("script", 1, "script number, starting at 1")
	body := fs.String("body", "", "new script body")
	bodyFile := fs.String("body-file", "", "read the new body from a file, - for stdin")
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	text := *body
	if *bodyFile != "" {
		text, err = readBody(*bodyFile)
		if err != nil {
			return err
		}
	}

	item, err := studio.EditScript(ctx, id, *script-1, text)
	if err != nil {
		return err
	}
	if *script < 1 || *script > len(item.Scripts) {
		return fmt.Errorf("item %s has %d scripts", id, len(item.Scripts))
	}
	fmt.Fprintf(stdout, "updated script %d of %s\n", *script, id)
	return nil
}

func readBody(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func runThumbnail(ctx context.Context, studio *service.Studio, args []string) error {
	id, err := parseWithID(flag.NewFlagSet("thumbnail", flag.ContinueOnError), args)
	if err != nil {
		return err
	}

	item, err := studio.GenerateThumbnail(ctx, id)
	if err != nil {
		return err
	}
	if item.Thumbnail == nil {
		fmt.Fprintln(stdout, "no script selected, nothing to do")
		return nil
	}

	t := item.Thumbnail
	fmt.Fprintf(stdout, "Concept: %s\nText Overlay: %s\nColor Scheme: %s\nEmotional Trigger: %s\n",
		t.ConceptDescription, t.TextOverlay, t.ColorScheme, t.EmotionalTrigger)
	if t.ImageURL != "" {
		fmt.Fprintf(stdout, "Image: %s\n", t.ImageURL)
	}
	return nil
}

func runSave(ctx context.Context, studio *service.Studio, args []string) error {
	id, err := parseWithID(flag.NewFlagSet("save", flag.ContinueOnError), args)
	if err != nil {
		return err
	}

	item, err := studio.Save(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s is %s\n", item.ID, item.Status)
	return nil
}

func runExport(ctx context.Context, studio *service.Studio, args []string) error {
	id, err := parseWithID(flag.NewFlagSet("export", flag.ContinueOnError), args)
	if err != nil {
		return err
	}

	item, text, err := studio.Export(ctx, id)
	if text != "" {
		fmt.Fprintln(stdout, text)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%s is %s\n", item.ID, item.Status)
	return nil
}

func runSummary(_ context.Context, studio *service.Studio, args []string) error {
	id, err := parseWithID(flag.NewFlagSet("summary", flag.ContinueOnError), args)
	if err != nil {
		return err
	}

	text, err := studio.Summary(id)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, text)
	return nil
}

func runFavorite(ctx context.Context, studio *service.Studio, args []string) error {
	id, err := parseWithID(flag.NewFlagSet("favorite", flag.ContinueOnError), args)
	if err != nil {
		return err
	}

	item, err := studio.ToggleFavorite(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s favorite=%t\n", item.ID, item.IsFavorite)
	return nil
}

func runDelete(ctx context.Context, studio *service.Studio, args []string) error {
	id, err := parseWithID(flag.NewFlagSet("delete", flag.ContinueOnError), args)
	if err != nil {
		return err
	}
	if err := studio.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "deleted %s\n", id)
	return nil
}

func runStats(_ context.Context, studio *service.Studio, args []string) error {
	if err := flag.NewFlagSet("stats", flag.ContinueOnError).Parse(args); err != nil {
		return err
	}

	stats := studio.Stats(time.Now())
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Total Generations\t%d\n", stats.Total)
	fmt.Fprintf(tw, "This Week\t%d\n", stats.ThisWeek)
	fmt.Fprintf(tw, "Favorites\t%d\n", stats.Favorites)
	for _, status := range []domain.Status{domain.StatusDraft, domain.StatusReady, domain.StatusExported} {
		fmt.Fprintf(tw, "%s\t%d\n", strings.ToUpper(string(status[:1]))+string(status[1:]), stats.ByStatus[status])
	}
	return tw.Flush()
}

func parseWithID(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() != 1 {
		return "", errors.New(fs.Name() + ": expected exactly one item id")
	}
	return fs.Arg(0), nil
}

