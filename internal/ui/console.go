package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Amr-9/SolHunter/pkg/generator"
	"github.com/Amr-9/SolHunter/pkg/generator/solana"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorPurple = "\033[35m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
)

// Out is where console output goes.
var Out io.Writer = os.Stdout

// PrintWelcomeBanner shows the welcome screen
func PrintWelcomeBanner(version string) {
	fmt.Fprintln(Out)
	fmt.Fprintf(Out, "%s%s", ColorCyan, ColorBold)
	fmt.Fprintln(Out, "  ╔══════════════════════════════════════════════╗")
	fmt.Fprintf(Out, "  ║  ◎ SolHunter %s• Solana vanity address v%-6s%s ║\n", ColorDim, version, ColorCyan+ColorBold)
	fmt.Fprintln(Out, "  ╚══════════════════════════════════════════════╝")
	fmt.Fprint(Out, ColorReset)
	fmt.Fprintln(Out)
}

// PrintSearchInfo displays search configuration
func PrintSearchInfo(prefixes []string, workers int) {
	fmt.Fprintf(Out, "    %s🚀 SEARCHING%s", ColorGreen+ColorBold, ColorReset)
	for i, p := range prefixes {
		if i > 0 {
			fmt.Fprintf(Out, " %s|%s", ColorDim, ColorReset)
		}
		fmt.Fprintf(Out, " %s%s%s%s...%s", ColorBold, ColorCyan, p, ColorDim, ColorReset)
	}
	fmt.Fprintf(Out, " %s(1/%s)%s\n", ColorDim, formatDifficulty(solana.EstimateAttempts(prefixes)), ColorReset)
	fmt.Fprintf(Out, "    %s⚡ %d workers%s\n\n", ColorDim, workers, ColorReset)
}

// PrintSuccess shows the found address
func PrintSuccess(result *generator.Result, outputFile string) {
	fmt.Fprintf(Out, "\n    %s%s╔══════════════════════════════════════════════════════════╗%s\n", ColorGreen, ColorBold, ColorReset)
	fmt.Fprintf(Out, "    %s%s║               ✨ ADDRESS FOUND! ✨                       ║%s\n", ColorGreen, ColorBold, ColorReset)
	fmt.Fprintf(Out, "    %s%s╚══════════════════════════════════════════════════════════╝%s\n\n", ColorGreen, ColorBold, ColorReset)

	fmt.Fprintf(Out, "    %s🎯 MATCHED PREFIX%s \"%s\"\n\n", ColorCyan+ColorBold, ColorReset, result.MatchedPrefix)

	fmt.Fprintf(Out, "    %s◎ SOLANA ADDRESS%s\n", ColorCyan+ColorBold, ColorReset)
	fmt.Fprintln(Out)
	fmt.Fprintf(Out, "       %s%s%s%s\n", ColorGreen, ColorBold, result.Address, ColorReset)
	fmt.Fprintln(Out)

	fmt.Fprintf(Out, "    %s🔑 PRIVATE KEY (Base58)%s\n", ColorPurple+ColorBold, ColorReset)
	fmt.Fprintf(Out, "       %s%s%s\n\n", ColorYellow, solana.PrivateKeyBase58(result.Keypair), ColorReset)

	snap := generator.NewSnapshot(result.Attempts, result.Elapsed)
	fmt.Fprintf(Out, "    %s⏱   %s%s   %s│   %s📊  %s%s   %s│   %s⚡  %s%s",
		ColorCyan, ColorReset+ColorBold, FormatElapsed(snap),
		ColorDim,
		ColorPurple, ColorReset+ColorBold, FormatNumber(result.Attempts),
		ColorDim,
		ColorGreen, ColorReset+ColorBold, FormatHashRate(snap.Rate))
	if outputFile != "" {
		fmt.Fprintf(Out, "   %s│   %s💾  %s%s", ColorDim, ColorYellow, ColorReset+ColorBold, outputFile)
	}
	fmt.Fprintf(Out, "%s\n\n", ColorReset)
	fmt.Fprintf(Out, "    %s%s⚠  KEEP YOUR PRIVATE KEY SECRET!%s\n", ColorRed, ColorBold, ColorReset)
}

// PrintCancelled reports a search stopped before a match.
func PrintCancelled(stats generator.Stats, reason error) {
	ClearLine()
	fmt.Fprintf(Out, "\n    %s⚠ Stopped%s │ %s attempts │ %s │ %v\n",
		ColorYellow+ColorBold, ColorReset,
		FormatNumber(stats.Attempts),
		FormatDuration(time.Duration(stats.ElapsedSecs*float64(time.Second))),
		reason)
}

// PrintError prints a one-line error.
func PrintError(err error) {
	fmt.Fprintf(Out, "\n    %s✗ %v%s\n", ColorRed, err, ColorReset)
}

// ClearLine clears the current line
func ClearLine() {
	fmt.Fprint(Out, "\r"+strings.Repeat(" ", 94)+"\r")
}

// FormatHashRate formats hash rate nicely
func FormatHashRate(rate float64) string {
	if rate >= 1000000 {
		return fmt.Sprintf("%.1fM/s", rate/1000000)
	}
	if rate >= 1000 {
		return fmt.Sprintf("%.1fK/s", rate/1000)
	}
	return fmt.Sprintf("%.0f/s", rate)
}

// FormatNumber adds commas to large numbers
func FormatNumber(n uint64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	s := fmt.Sprintf("%d", n)
	result := make([]byte, 0, len(s)+(len(s)-1)/3)
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}

// formatDifficulty prints small estimates in full and huge ones in e-notation.
func formatDifficulty(d float64) string {
	if d < 1e15 {
		return FormatNumber(uint64(d))
	}
	return fmt.Sprintf("%.2g", d)
}

// FormatElapsed renders a snapshot's elapsed time as minutes:seconds.
func FormatElapsed(s generator.Snapshot) string {
	return fmt.Sprintf("%dm:%02ds", s.Minutes(), s.Seconds())
}

// FormatDuration formats duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}
