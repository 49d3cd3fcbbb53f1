package commands

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/mindmap/pkg/commands/options"
	"tableflip.dev/mindmap/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	mo := &options.MCPOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that lets assistants log emotions, read and search the
log, and fetch weekly or monthly summaries through the Model Context Protocol.`,
		Example: `
mindmap mcp --http-port 0
mindmap mcp --transport stdio
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			transport, err := mcp.ParseTransport(mo.Transport)
			if err != nil {
				return err
			}
			addr, err := mo.Addr()
			if err != nil {
				return err
			}
			s, err := openSession()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r := mcp.Runner{
				Store:     s.log,
				Version:   version,
				Transport: transport,
				Addr:      addr,
				Path:      mo.Path,
				CertFile:  strings.TrimSpace(mo.TLSCert),
				KeyFile:   strings.TrimSpace(mo.TLSKey),
				Listening: func(url string) {
					_, _ = fmt.Fprintf(out, "MCP HTTP server listening on %s\n", url)
				},
				In:  cmd.InOrStdin(),
				Out: out,
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return r.Do(ctx)
		},
	}

	options.AddMCPArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
