package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdvotes/runoff/internal/adapters/driving/mcp"
)

var mcpPort int

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start a read-only Model Context Protocol server exposing the dashboards
as tools (expenditure_summary, expenditure_list, contribution_summary,
ballot_stats, ballot_compare) and resources (runoff://expenditures/organizations,
runoff://ballots/{election}).

Datasets are loaded on the first request that needs them.
By default the server speaks JSON-RPC over stdio; --port serves
streamable HTTP instead.

Examples:
  runoff mcp serve
  runoff mcp serve --port 8080 --data https://example.org/d1`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if mcpPort < 0 || mcpPort > 65535 {
		return fmt.Errorf("invalid port %d", mcpPort)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Expenditures:  expenditureService,
		Contributions: contributionService,
		Ballots:       ballotService,
	})
	if err != nil {
		return err
	}

	if mcpPort == 0 {
		return server.Run(cmd.Context())
	}
	addr := fmt.Sprintf(":%d", mcpPort)
	fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s/\n", addr)
	return server.RunHTTP(cmd.Context(), addr)
}
