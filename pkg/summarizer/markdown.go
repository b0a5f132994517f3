package summarizer

import (
	"fmt"
	"strings"

	"github.com/ideamans/go-l10n"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator replaces the heading translator (default: l10n.T).
func WithTranslator(fn func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = fn
	}
}

// WithVersion adds the tool version to the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{translate: l10n.T}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Compile Summary"))

	fmt.Fprintf(&b, "## %s\n\n", t("Source"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	fmt.Fprintf(&b, "| %s | %s |\n", t("Input"), s.Source.Input)
	fmt.Fprintf(&b, "| %s | %d |\n\n", t("Frames"), s.Source.FrameCount)

	fmt.Fprintf(&b, "## %s\n\n", t("Settings"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	fmt.Fprintf(&b, "| FPS | %g |\n", s.Settings.FPS)
	fmt.Fprintf(&b, "| %s | %.2f |\n", t("Quality"), s.Settings.Quality)
	fmt.Fprintf(&b, "| %s | %.0f ms |\n", t("Max Cluster Duration"), s.Settings.MaxClusterDurationMs)
	encoder := s.Settings.ImageEncoder
	if encoder == "" {
		encoder = t("None")
	}
	fmt.Fprintf(&b, "| %s | %s |\n\n", t("Image Encoder"), encoder)

	fmt.Fprintf(&b, "## %s\n\n", t("Video"))
	fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	if s.Video.OutputPath != "" {
		fmt.Fprintf(&b, "| %s | %s |\n", t("Output"), s.Video.OutputPath)
	}
	fmt.Fprintf(&b, "| %s | %dx%d |\n", t("Resolution"), s.Video.Width, s.Video.Height)
	fmt.Fprintf(&b, "| %s | %d |\n", t("Frames"), s.Video.FrameCount)
	fmt.Fprintf(&b, "| %s | %d |\n", t("Clusters"), s.Video.ClusterCount)
	fmt.Fprintf(&b, "| %s | %s |\n", t("Duration"), formatDuration(s.Video.DurationMs))
	fmt.Fprintf(&b, "| %s | %s |\n\n", t("File Size"), formatBytes(s.Video.FileSize))

	if len(s.Clusters) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", t("Clusters"))
		fmt.Fprintf(&b, "| # | %s | %s | %s | %s |\n|---|---|---|---|---|\n",
			t("Timecode"), t("Frames"), t("Duration"), t("Size"))
		for i, c := range s.Clusters {
			fmt.Fprintf(&b, "| %d | %d ms | %d | %s | %s |\n",
				i, c.TimecodeMs, c.FrameCount, formatDuration(c.DurationMs), formatBytes(int64(c.Bytes)))
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	footer := fmt.Sprintf("%s %s", t("Generated at"), s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	if f.version != "" {
		footer += fmt.Sprintf(" (webmrec %s)", f.version)
	}
	b.WriteString(footer + "\n")

	return b.String()
}

func formatDuration(ms float64) string {
	if ms < 1000 {
		return fmt.Sprintf("%.0f ms", ms)
	}
	return fmt.Sprintf("%.2f s", ms/1000)
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < 2; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMG"[exp])
}
