package shell

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	ansiBlue  = "\033[34m"
	ansiReset = "\033[0m"
)

const (
	inventoryBanner = "======= The Current Inventory: ======="
	inventoryHeader = "ID\tCD Title (by: Artist)"
)

var menuText = strings.Join([]string{
	"Menu",
	"",
	"[l] load Inventory from file",
	"[a] Add CD",
	"[i] Display Current Inventory",
	"[d] delete CD from Inventory",
	"[s] Save Inventory to file",
	"[x] exit",
	"",
}, "\n")

func (s *Session) printMenu() {
	fmt.Fprintln(s.out, menuText)
}

func (s *Session) showInventory() {
	fmt.Fprintln(s.out, s.banner(inventoryBanner))
	fmt.Fprintln(s.out, inventoryHeader)
	fmt.Fprintln(s.out)
	for _, record := range s.inv {
		fmt.Fprintln(s.out, record.String())
	}
	fmt.Fprintln(s.out, s.banner(strings.Repeat("=", len(inventoryBanner))))
}

func (s *Session) banner(line string) string {
	if !s.colorize {
		return line
	}
	return ansiBlue + line + ansiReset
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
