package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fasahat78/startege/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using system env")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc, err := buildService(cmd.Context(), st)
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("addr")
		origins := corsOrigins()

		r := server.New(svc).Router(origins)
		log.Printf("listening on %s", addr)
		if err := r.Run(addr); err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	},
}

// corsOrigins reads the allowed origins from STARTEGE_CORS_ORIGINS
// (comma-separated), defaulting to the local dev frontend.
func corsOrigins() []string {
	raw := os.Getenv("STARTEGE_CORS_ORIGINS")
	if raw == "" {
		return []string{"http://localhost:3000"}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
}
