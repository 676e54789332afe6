package command

// DefaultRegistry returns a registry holding every built-in command.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterBuiltins(r)
	return r
}

// RegisterBuiltins registers the built-in commands on reg in help order.
func RegisterBuiltins(reg *Registry) {
	for _, s := range builtins() {
		reg.Register(s)
	}
}

func builtins() []Spec {
	return []Spec{
		{Name: "hello", Help: "Greet the assistant.", Run: hello},
		{Name: "help", Help: "Show this list of commands.", Run: help},
		{Name: "add", Args: "<name> <phone>", Help: "Add a contact or a phone to an existing contact.",
			MinArgs: 2, MaxArgs: 2, Run: addContact},
		{Name: "phone", Args: "<name>", Help: "Show a contact's phones.",
			MinArgs: 1, MaxArgs: 1, Run: showPhone},
		{Name: "remove-phone", Args: "<name> <phone>", Help: "Remove a phone from a contact.",
			MinArgs: 2, MaxArgs: 2, Run: removePhone},
		{Name: "edit", Args: "<name> <field> <value>",
			Help:    "Change a field: phone <old> <new>, email <old> <new>, address <text>, birthday <DD.MM.YYYY>, note <text>.",
			MinArgs: 3, Rest: true, Run: editContact},
		{Name: "delete", Args: "<name>", Help: "Delete a contact.",
			MinArgs: 1, MaxArgs: 1, Run: deleteContact},
		{Name: "all", Help: "Show every contact.", Run: showAll},
		{Name: "add-birthday", Args: "<name> <DD.MM.YYYY>", Help: "Set a contact's birthday.",
			MinArgs: 2, MaxArgs: 2, Run: addBirthday},
		{Name: "show-birthday", Args: "<name>", Help: "Show a contact's birthday.",
			MinArgs: 1, MaxArgs: 1, Run: showBirthday},
		{Name: "birthdays", Args: "[days]", Help: "Show birthdays in the next days (weekends move to Monday).",
			MinArgs: 0, MaxArgs: 1, Run: birthdays},
		{Name: "add-email", Args: "<name> <email>", Help: "Add an email to a contact.",
			MinArgs: 2, MaxArgs: 2, Run: addEmail},
		{Name: "edit-email", Args: "<name> <old_email> <new_email>", Help: "Replace a contact's email.",
			MinArgs: 3, MaxArgs: 3, Run: editEmail},
		{Name: "remove-email", Args: "<name> <email>", Help: "Remove an email from a contact.",
			MinArgs: 2, MaxArgs: 2, Run: removeEmail},
		{Name: "show-email", Args: "<name>", Help: "Show a contact's emails.",
			MinArgs: 1, MaxArgs: 1, Run: showEmail},
		{Name: "add-address", Args: "<name> <address>", Help: "Set a contact's address.",
			MinArgs: 2, Rest: true, Run: addAddress},
		{Name: "edit-address", Args: "<name> <address>", Help: "Replace a contact's address.",
			MinArgs: 2, Rest: true, Run: editAddress},
		{Name: "remove-address", Args: "<name>", Help: "Remove a contact's address.",
			MinArgs: 1, MaxArgs: 1, Run: removeAddress},
		{Name: "show-address", Args: "<name>", Help: "Show a contact's address.",
			MinArgs: 1, MaxArgs: 1, Run: showAddress},
		{Name: "add-note", Args: "<name> <note_text>", Help: "Attach a note; #words become tags.",
			MinArgs: 2, Rest: true, Run: addNote},
		{Name: "edit-note", Args: "<name> <note_text>", Help: "Replace a contact's note.",
			MinArgs: 2, Rest: true, Run: editNote},
		{Name: "delete-note", Args: "<name>", Help: "Delete a contact's note.",
			MinArgs: 1, MaxArgs: 1, Run: deleteNote},
		{Name: "search", Args: "<query>", Help: "Find contacts by name.",
			MinArgs: 1, MaxArgs: 1, Run: search},
		{Name: "search-notes", Args: "<query>", Help: "Find contacts by note text.",
			MinArgs: 1, Rest: true, Run: searchNotes},
		{Name: "search-tags", Args: "<tag>", Help: "Find contacts whose note has #tag.",
			MinArgs: 1, MaxArgs: 1, Run: searchTags},
		{Name: "sort-tags", Help: "List tagged contacts ordered by their first tag.", Run: sortTags},
		{Name: "close", Help: "Save and exit.", Quit: true, Run: goodbye},
		{Name: "exit", Help: "Save and exit.", Quit: true, Run: goodbye},
	}
}
