package cmds

import (
	"fmt"
	"io"
	"maps"
	"reflect"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.printUsage(p.output, p.commands, 0)
}

func (p *Executor) printUsage(w io.Writer, commands map[string]*Command, depth int) {
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || slices.Contains(command.Aliases, name) {
			continue
		}

		line := strings.Repeat("  ", depth) + name
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if args := command.argsUsage(); args != "" {
			line += " " + args
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)

		if len(command.Subs) > 0 {
			p.printUsage(w, command.Subs, depth+1)
		}
	}
}

func (c *Command) argsUsage() string {
	if !c.Func.IsValid() {
		return ""
	}
	t := c.Func.Type()
	var parts []string
	for i := range t.NumIn() {
		in := t.In(i)
		if in.Kind() == reflect.Pointer {
			parts = append(parts, "["+in.Elem().Kind().String()+"]")
		} else {
			parts = append(parts, "<"+in.Kind().String()+">")
		}
	}
	return strings.Join(parts, " ")
}
