package view

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

const (
	onClick  = "data-on:click"
	onChange = "data-on:change"
	onInput  = "data-on:input__debounce.300ms"
)

// Action describes what happens when the user triggers an element. Either
// it calls the server (Method + URL) or it runs a client-side Script.
type Action struct {
	Method  string
	URL     string
	Script  string
	Confirm string
	// Signals restricts which signals are sent, as a JS regexp body.
	Signals string
}

func Get(url string) Action    { return Action{Method: "get", URL: url} }
func Post(url string) Action   { return Action{Method: "post", URL: url} }
func Delete(url string) Action { return Action{Method: "delete", URL: url} }

func Script(js string) Action { return Action{Script: js} }

// Navigate sends the browser to url without a server round trip.
func Navigate(url string) Action {
	return Script("window.location.href = " + jsString(url))
}

func (a Action) IsZero() bool {
	return a.URL == "" && a.Script == ""
}

// Expr renders the datastar expression. Server calls carry the CSRF token
// from the page-level _csrf signal.
func (a Action) Expr() string {
	call := a.Script
	if call == "" {
		opts := []string{"headers: {'X-CSRF-Token': $_csrf}"}
		if a.Signals != "" {
			opts = append(opts, fmt.Sprintf("filterSignals: {include: /%s/}", a.Signals))
		}
		call = fmt.Sprintf("@%s(%s, {%s})", strings.ToLower(a.Method), jsString(a.URL), strings.Join(opts, ", "))
	}
	if a.Confirm != "" {
		return fmt.Sprintf("confirm(%s) && %s", jsString(a.Confirm), call)
	}
	return call
}

// On returns the attribute binding a to event.
func On(event string, a Action) html.Attribute {
	return html.Attribute{Key: event, Val: a.Expr()}
}

// withAction appends the click binding for a to attrs unless a is empty.
func withAction(attrs []html.Attribute, a Action) []html.Attribute {
	if a.IsZero() {
		return attrs
	}
	return append(attrs, On(onClick, a))
}

func Button(label string, a Action, kv ...string) *html.Node {
	return El("button", withAction(Attrs(kv...), a), Text(label))
}

// Actions lists the actionable elements under n.
func Actions(n *html.Node) []*html.Node {
	return Find(n, func(c *html.Node) bool { return AttrVal(c, onClick) != "" })
}
