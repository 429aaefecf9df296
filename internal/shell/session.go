package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/cases"

	"cdinventory/internal/inventory"
	"cdinventory/internal/logging"
	"cdinventory/internal/storage"
)

// Session drives one interactive run against a storage gateway.
type Session struct {
	in       *bufio.Reader
	out      io.Writer
	gateway  storage.Gateway
	logger   *slog.Logger
	inv      inventory.Inventory
	fold     cases.Caser
	colorize bool
}

// New builds a session reading commands from in and rendering to out. The
// inventory starts empty until Run loads the stored snapshot.
func New(in io.Reader, out io.Writer, gateway storage.Gateway, logger *slog.Logger) *Session {
	return &Session{
		in:       bufio.NewReader(in),
		out:      out,
		gateway:  gateway,
		logger:   logging.NewComponentLogger(logger, "shell"),
		inv:      inventory.Inventory{},
		fold:     cases.Fold(),
		colorize: shouldColorize(out),
	}
}

// Inventory returns a copy of the working inventory.
func (s *Session) Inventory() inventory.Inventory {
	return s.inv.Clone()
}

// Run loads the stored snapshot and serves menu commands until the user exits
// or input ends. Unsaved changes are discarded on exit. Only a failing input
// stream produces an error.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("session started", logging.String(logging.FieldLocation, s.gateway.Location()))
	s.load(ctx)

	for {
		s.printMenu()
		choice, err := s.menuChoice()
		if err != nil {
			return s.finish(err)
		}
		if choice == cmdExit {
			return s.finish(nil)
		}
		if err := s.dispatch(ctx, choice); err != nil {
			return s.finish(err)
		}
	}
}

func (s *Session) finish(err error) error {
	if err != nil && !errors.Is(err, io.EOF) {
		logging.ErrorWithContext(s.logger, "session input failed", "session_input_failed", logging.Error(err))
		return fmt.Errorf("read input: %w", err)
	}
	s.logger.Info("session ended",
		logging.Int(logging.FieldRecordCount, s.inv.Len()),
		logging.Bool("input_closed", err != nil))
	return nil
}

func (s *Session) dispatch(ctx context.Context, choice command) error {
	switch choice {
	case cmdLoad:
		return s.handleLoad(ctx)
	case cmdAdd:
		return s.handleAdd()
	case cmdList:
		s.showInventory()
		return nil
	case cmdDelete:
		return s.handleDelete()
	case cmdSave:
		return s.handleSave(ctx)
	default:
		// menuChoice only returns known commands.
		fmt.Fprintln(s.out, "General Error")
		return nil
	}
}

// load replaces the working inventory with the stored snapshot. Failures are
// reported and leave the working inventory untouched.
func (s *Session) load(ctx context.Context) {
	inv, err := s.gateway.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		fmt.Fprintln(s.out, "File not found")
		s.logger.Info("no stored inventory", logging.String(logging.FieldLocation, s.gateway.Location()))
		return
	case err != nil:
		fmt.Fprintf(s.out, "Could not load inventory: %v\n", err)
		logging.WarnWithContext(s.logger, "inventory load failed", "inventory_load_failed",
			logging.Error(err),
			logging.String(logging.FieldLocation, s.gateway.Location()),
			logging.String(logging.FieldErrorHint, "inspect or remove the snapshot file"),
			logging.String(logging.FieldImpact, "session continues with the current inventory"))
		return
	}
	s.inv = inv
	s.logger.Info("inventory loaded", logging.Int(logging.FieldRecordCount, inv.Len()))
}
