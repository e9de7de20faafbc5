package commands

import "github.com/BruksfildServices01/hrms/internal/db"

type MigrateCmd struct{}

func (c *MigrateCmd) Run(globals *Globals) error {
	cfg, log, conn, err := bootstrap(globals)
	if err != nil {
		return err
	}
	defer db.Close(conn)

	log.Info().Bool("hosted", cfg.Hosted()).Msg("Database migrations completed")
	return nil
}
