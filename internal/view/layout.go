package view

import (
	"encoding/json"

	"golang.org/x/net/html"
)

const DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

type Page struct {
	Title   string
	Header  *html.Node
	Content []*html.Node
	CSRF    string
}

// Layout wraps a page in the shared chrome: header slot, hidden modal,
// booking overlay slot and the page-level _csrf signal used by every action.
func Layout(p Page) *html.Node {
	signals, _ := json.Marshal(map[string]string{"_csrf": p.CSRF})

	main := El("main", Attrs("class", "main-content"))
	for _, c := range p.Content {
		main.AppendChild(c)
	}

	return El("html", Attrs("lang", "en"),
		El("head", nil,
			El("meta", Attrs("charset", "UTF-8")),
			El("meta", Attrs("name", "viewport", "content", "width=device-width, initial-scale=1.0")),
			El("title", nil, Text(p.Title)),
			El("link", Attrs("rel", "stylesheet", "href", "/static/css/style.css")),
			El("script", Attrs("type", "module", "src", DatastarScript)),
		),
		El("body", Attrs("data-signals", string(signals)),
			El("div", Attrs("id", "header"), p.Header),
			HiddenModal(),
			EmptyBookingOverlay(),
			main,
		),
	)
}

// AlertRedirect is the whole response when a page must not render: show the
// message, then leave.
func AlertRedirect(message, url string) *html.Node {
	js := "alert(" + jsString(message) + "); window.location.href = " + jsString(url) + ";"
	return El("html", Attrs("lang", "en"),
		El("head", nil, El("title", nil, Text("Redirecting"))),
		El("body", nil, El("script", nil, Text(js))),
	)
}

// RoleSelection is the root page: the landing screen that starts every login.
func RoleSelection() []*html.Node {
	return []*html.Node{
		El("section", Attrs("class", "role-selection"),
			El("h2", nil, Text("Select Your Role:")),
			Button("Admin", Get(ModalURL(ModalAdminLogin)), "type", "button", "class", "dashboard-btn", "id", "adminBtn"),
			Button("Doctor", Get(ModalURL(ModalDoctorLogin)), "type", "button", "class", "dashboard-btn", "id", "doctorBtn"),
			Button("Patient", Navigate("/role/patient"), "type", "button", "class", "dashboard-btn", "id", "patientBtn"),
		),
	}
}

var timeFilters = []struct{ Value, Label string }{
	{"", "Sort by time"},
	{"AM", "AM"},
	{"PM", "PM"},
}

// filterSignals keeps modal fields out of filter requests.
const filterSignals = "^(search|time|specialty)$"

// Dashboard is the doctor listing with its filter bar.
func Dashboard(list *html.Node) []*html.Node {
	filter := Get("/doctors/filter")
	filter.Signals = filterSignals

	timeSel := El("select", Attrs("id", "time-filter", "data-bind", "time", "class", "filter-dropdown"))
	timeSel.Attr = append(timeSel.Attr, On(onChange, filter))
	for _, t := range timeFilters {
		timeSel.AppendChild(El("option", Attrs("value", t.Value), Text(t.Label)))
	}

	specSel := specialtySelect("specialty-filter", "specialty", "Filter by Specialty")
	specSel.Attr = append(specSel.Attr, On(onChange, filter))

	search := El("input", Attrs("type", "text", "id", "search-bar", "data-bind", "search", "placeholder", "Search by name", "class", "searchBar"))
	search.Attr = append(search.Attr, On(onInput, filter))

	return []*html.Node{
		El("div", Attrs("class", "filter-bar", "data-signals", `{"search":"","time":"","specialty":""}`), search, timeSel, specSel),
		list,
	}
}
