package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/ctypes"
	"github.com/wippyai/ctypes/platform"
	"github.com/wippyai/ctypes/types"
)

func main() {
	var (
		profile     = flag.String("profile", "", "Platform profile (.yaml/.toml) or layout name (lp64, llp64, ilp32, i386, win32)")
		typeName    = flag.String("type", "", "Type expression, e.g. int, uint64, char **")
		hexBytes    = flag.String("hex", "", "Bytes to decode, hex (\"01 02 ff\" or \"0102ff\")")
		value       = flag.String("value", "", "Value to encode")
		offset      = flag.Int("offset", 0, "Byte offset into the buffer")
		list        = flag.Bool("list", false, "List registered types and exit")
		verbose     = flag.Bool("v", false, "Log registry construction")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		if logger, err := zap.NewDevelopment(); err == nil {
			types.SetLogger(logger)
			defer func() { _ = logger.Sync() }()
		}
	}

	reg, err := loadRegistry(*profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))

	switch {
	case *interactive:
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		err = runInteractive(reg)
	case *list:
		listTypes(reg, styled)
	case *typeName == "":
		fmt.Fprintln(os.Stderr, "Usage: ctypes [-profile p] -list")
		fmt.Fprintln(os.Stderr, "       ctypes [-profile p] -type T -hex \"01 02 03 04\" [-offset n]")
		fmt.Fprintln(os.Stderr, "       ctypes [-profile p] -type T -value V [-offset n]")
		fmt.Fprintln(os.Stderr, "       ctypes [-profile p] -i  (interactive mode)")
		os.Exit(1)
	case *hexBytes != "":
		err = decode(reg, *typeName, *hexBytes, *offset)
	default:
		err = encode(reg, *typeName, *value, *offset)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadRegistry(profile string) (*types.Registry, error) {
	if profile == "" {
		return types.Default(), nil
	}
	if l, ok := platform.ByName(profile); ok {
		return types.NewRegistry(l)
	}
	l, err := platform.LoadProfile(profile)
	if err != nil {
		return nil, err
	}
	return types.NewRegistry(l)
}

func decode(reg *types.Registry, expr, hexStr string, off int) error {
	t, err := reg.Coerce(expr)
	if err != nil {
		return err
	}
	data, err := parseHex(hexStr)
	if err != nil {
		return err
	}
	if off < 0 || off+t.Size() > len(data) {
		return fmt.Errorf("%s needs %d bytes at offset %d, have %d", t.Name(), t.Size(), off, len(data))
	}
	buf := ctypes.Wrap(data, t)
	fmt.Printf("%s = %v\n", t.Name(), formatValue(buf.Get(off)))
	return nil
}

func encode(reg *types.Registry, expr, raw string, off int) error {
	t, err := reg.Coerce(expr)
	if err != nil {
		return err
	}
	if off < 0 {
		return fmt.Errorf("negative offset %d", off)
	}
	buf := ctypes.Wrap(make([]byte, off+t.Size()), t)
	if err := buf.Set(off, parseValue(raw)); err != nil {
		return err
	}
	fmt.Println(ctypes.Plain.Render(buf))
	fmt.Printf("%s = %v\n", t.Name(), formatValue(buf.Get(off)))
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98"))
	baseStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB"))
)

func listTypes(reg *types.Registry, styled bool) {
	l := reg.Layout()
	fmt.Printf("Layout: %s (%s, pointer %d bytes)\n\n", l.Name, l.Endian, reg.PointerSize())

	header := fmt.Sprintf("%-12s %-10s %4s %5s %4s  %s", "NAME", "BASE", "SIZE", "ALIGN", "IND", "CATEGORY")
	if styled {
		header = headerStyle.Render(header)
	}
	fmt.Println(header)
	for _, row := range typeRows(reg) {
		name, base := fmt.Sprintf("%-12s", row.name), fmt.Sprintf("%-10s", row.base)
		if styled {
			name, base = nameStyle.Render(name), baseStyle.Render(base)
		}
		fmt.Printf("%s %s %4d %5d %4d  %s\n", name, base, row.size, row.align, row.indirection, row.category)
	}
}

type typeRow struct {
	name        string
	base        string
	category    string
	size        int
	align       int
	indirection int
}

func typeRows(reg *types.Registry) []typeRow {
	names := reg.Names()
	rows := make([]typeRow, 0, len(names))
	for _, name := range names {
		d := reg.MustGet(name)
		base := "-"
		if d.Base() != nil {
			base = d.Base().Name()
		}
		rows = append(rows, typeRow{
			name:        name,
			base:        base,
			size:        d.Size(),
			align:       d.Alignment(),
			indirection: d.Indirection(),
			category:    d.Category().String(),
		})
	}
	return rows
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "void"
	case string:
		return fmt.Sprintf("%q", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func describeType(d *types.Descriptor) string {
	var b strings.Builder
	b.WriteString(d.Name())
	if d.Base() != nil {
		b.WriteString(" -> ")
		b.WriteString(d.Base().Name())
	}
	fmt.Fprintf(&b, " (size %d, align %d, %s)", d.Size(), d.Alignment(), d.Category())
	return b.String()
}
