package main

import "github.com/emurenMRz/emailparser/internal/server"

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := server.New(server.Config{
		MailboxPath:   c.Mailboxes,
		History:       deps.History,
		RatePerSecond: c.Rate,
		Burst:         c.Burst,
		MaxBodyBytes:  c.MaxBody,
		Logger:        deps.Logger,
	})
	return s.ListenAndServe(deps.Ctx, c.Addr)
}
