package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cdinventory/internal/inventory"
)

// readLine prints prompt and returns the next input line without its line
// ending. A final line without a newline is still returned; io.EOF is only
// reported once nothing is left.
func (s *Session) readLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(s.out, prompt)
	}
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// normalize trims and case-folds free-form answers before comparison.
func (s *Session) normalize(value string) string {
	return s.fold.String(strings.TrimSpace(value))
}

func (s *Session) menuChoice() (command, error) {
	for {
		line, err := s.readLine("Which operation would you like to perform? [l, a, i, d, s or x]: ")
		if err != nil {
			return "", err
		}
		if choice, ok := parseCommand(s.normalize(line)); ok {
			fmt.Fprintln(s.out)
			return choice, nil
		}
	}
}

func parseID(value string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(value))
}

// readID asks for an integer until one parses.
func (s *Session) readID(prompt string) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		id, parseErr := parseID(line)
		if parseErr == nil {
			return id, nil
		}
		s.reportNotInteger(parseErr)
	}
}

// collectRecord gathers id, title, and artist. A bad id restarts collection
// from the id prompt, so nothing partial is ever returned.
func (s *Session) collectRecord() (inventory.Record, error) {
	for {
		line, err := s.readLine("Enter ID: ")
		if err != nil {
			return inventory.Record{}, err
		}
		id, parseErr := parseID(line)
		if parseErr != nil {
			s.reportNotInteger(parseErr)
			continue
		}

		title, err := s.readLine("What is the CD's title? ")
		if err != nil {
			return inventory.Record{}, err
		}
		artist, err := s.readLine("What is the Artist's name? ")
		if err != nil {
			return inventory.Record{}, err
		}
		return inventory.Record{
			ID:     id,
			Title:  strings.TrimSpace(title),
			Artist: strings.TrimSpace(artist),
		}, nil
	}
}

func (s *Session) reportNotInteger(err error) {
	fmt.Fprintln(s.out, "Not an integer")
	fmt.Fprintf(s.out, "Error info: %v\n", err)
	fmt.Fprintln(s.out)
	s.showInventory()
}
