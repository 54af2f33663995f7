package main

import (
	"fmt"
	"strings"

	"github.com/e-ogugua/emmdraEmpireAndLifestyle-sub001/logic"
)

// ANSI color codes
const (
	green  = "\033[92m"
	yellow = "\033[93m"
	cyan   = "\033[96m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	reset  = "\033[0m"
)

func (a *app) color(code string) string {
	if a.noColor {
		return ""
	}
	return code
}

func (a *app) render(state logic.CartState) {
	rule := strings.Repeat("─", 48)
	fmt.Fprintf(a.out, "%s%s%s\n", a.color(bold), rule, a.color(reset))
	fmt.Fprintf(a.out, "%s%sCART%s  %s%d items%s\n",
		a.color(bold), a.color(cyan), a.color(reset),
		a.color(dim), state.ItemCount, a.color(reset))
	fmt.Fprintln(a.out, rule)

	if state.IsEmpty() {
		fmt.Fprintf(a.out, "  %s(empty)%s\n", a.color(dim), a.color(reset))
	}
	for _, item := range state.Items {
		name := item.Name
		if name == "" {
			name = item.ID
		}
		fmt.Fprintf(a.out, "  - %s%dx%s %s @ %s = %s\n",
			a.color(yellow), item.Quantity, a.color(reset),
			name, item.Price.StringFixed(2), item.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(a.out, "  %stotal:%s %s%s%s\n",
		a.color(dim), a.color(reset),
		a.color(green), state.Total.StringFixed(2), a.color(reset))
}
