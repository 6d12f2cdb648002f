package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/adiboy-23/fun-pump/pkg/auth"
	"github.com/adiboy-23/fun-pump/pkg/config"
)

var errNoSecret = errors.New("auth.hmac_secret is not set")

func newTokenCmd(a *app) *cobra.Command {
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token <subject>",
		Short: "Issue an operator token for the trade server's write routes",
		Long: `Sign a bearer token with auth.hmac_secret. The trade server accepts it on
POST routes while auth.enabled is set.`,
		Example: `  FUNPUMP_AUTH_HMAC_SECRET=... funpump token ops-desk --ttl 24h`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Auth
			if cfg.HMACSecret == "" {
				return errNoSecret
			}
			if len(cfg.HMACSecret) < config.MinHMACSecretLength {
				return fmt.Errorf("auth.hmac_secret must be at least %d bytes", config.MinHMACSecretLength)
			}
			if ttl <= 0 {
				ttl = cfg.TokenTTL
			}
			token, err := auth.NewJWTValidator(cfg.HMACSecret, cfg.Issuer, ttl).IssueToken(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out(cmd), token)
			return err
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime, defaults to auth.token_ttl")
	return cmd
}
