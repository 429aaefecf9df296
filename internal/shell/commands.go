package shell

import (
	"context"
	"fmt"

	"cdinventory/internal/inventory"
	"cdinventory/internal/logging"
)

type command string

const (
	cmdLoad   command = "l"
	cmdAdd    command = "a"
	cmdList   command = "i"
	cmdDelete command = "d"
	cmdSave   command = "s"
	cmdExit   command = "x"
)

var commands = []command{cmdLoad, cmdAdd, cmdList, cmdDelete, cmdSave, cmdExit}

func parseCommand(value string) (command, bool) {
	for _, c := range commands {
		if string(c) == value {
			return c, true
		}
	}
	return "", false
}

func (s *Session) handleLoad(ctx context.Context) error {
	fmt.Fprintln(s.out, "WARNING: If you continue, all unsaved data will be lost and the Inventory re-loaded from file.")
	answer, err := s.readLine("type 'yes' to continue and reload from file. otherwise reload will be canceled: ")
	if err != nil {
		return err
	}
	if s.normalize(answer) == "yes" {
		fmt.Fprintln(s.out, "reloading...")
		s.load(ctx)
		s.showInventory()
		return nil
	}

	if _, err := s.readLine("canceling... Inventory data NOT reloaded. Press [ENTER] to continue to the menu."); err != nil {
		return err
	}
	s.showInventory()
	return nil
}

func (s *Session) handleAdd() error {
	record, err := s.collectRecord()
	if err != nil {
		return err
	}
	s.inv = inventory.Append(s.inv, record)
	s.logger.Info("record added",
		logging.Int(logging.FieldRecordID, record.ID),
		logging.Int(logging.FieldRecordCount, s.inv.Len()))
	s.showInventory()
	return nil
}

func (s *Session) handleDelete() error {
	s.showInventory()
	id, err := s.readID("Which ID would you like to delete? ")
	if err != nil {
		return err
	}

	var removed bool
	s.inv, removed = inventory.RemoveByID(s.inv, id)
	if removed {
		fmt.Fprintln(s.out, "The CD was removed")
	} else {
		fmt.Fprintln(s.out, "Could not find this CD!")
	}
	s.logger.Info("record delete requested",
		logging.Int(logging.FieldRecordID, id),
		logging.Bool("removed", removed),
		logging.Int(logging.FieldRecordCount, s.inv.Len()))
	s.showInventory()
	return nil
}

func (s *Session) handleSave(ctx context.Context) error {
	s.showInventory()
	answer, err := s.readLine("Save this inventory to file? [y/n] ")
	if err != nil {
		return err
	}
	if s.normalize(answer) != "y" {
		_, err := s.readLine("The inventory was NOT saved to file. Press [ENTER] to return to the menu.")
		return err
	}

	if err := s.gateway.Save(ctx, s.inv); err != nil {
		fmt.Fprintf(s.out, "Could not save inventory: %v\n", err)
		logging.ErrorWithContext(s.logger, "inventory save failed", "inventory_save_failed",
			logging.Error(err),
			logging.String(logging.FieldLocation, s.gateway.Location()),
			logging.String(logging.FieldErrorHint, "check that the storage directory is writable"))
		return nil
	}
	fmt.Fprintf(s.out, "Inventory saved to %s\n", s.gateway.Location())
	s.logger.Info("inventory saved",
		logging.Int(logging.FieldRecordCount, s.inv.Len()),
		logging.String(logging.FieldLocation, s.gateway.Location()))
	return nil
}
