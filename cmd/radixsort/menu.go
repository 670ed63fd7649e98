package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	radixsort "github.com/NarmeenMousa31/Radix-Sort"
	"github.com/NarmeenMousa31/Radix-Sort/wordfile"
)

const menuText = `
1. Load strings from input file
2. Print strings before sorting
3. Sort strings using Radix Sort
4. Print sorted strings
5. Add a new word to the list (and sort it)
6. Delete a word from the sorted strings
7. Save to output file
8. Exit
-----------------------------------------------
Enter your choice: `

// menu is the interactive loop over one list. Input is read as
// whitespace-separated tokens.
type menu struct {
	app  *app
	in   *bufio.Scanner
	out  io.Writer
	list *radixsort.List
}

func newMenu(a *app, in io.Reader, out io.Writer) *menu {
	s := bufio.NewScanner(in)
	s.Split(bufio.ScanWords)
	return &menu{
		app:  a,
		in:   s,
		out:  out,
		list: a.newList(),
	}
}

// token returns the next input token; ok is false at end of input.
func (m *menu) token(prompt string) (string, bool) {
	if prompt != "" {
		fmt.Fprint(m.out, prompt)
	}
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

// run loops until the user exits or input ends.
func (m *menu) run() error {
	defer m.list.Clear()
	for {
		choice, ok := m.token(menuText)
		if !ok {
			fmt.Fprintln(m.out)
			return m.in.Err()
		}
		n, err := strconv.Atoi(choice)
		if err != nil {
			n = 0
		}
		switch n {
		case 1:
			m.loadFile()
		case 2:
			printWords(m.out, "Strings before sorting:", m.list)
		case 3:
			m.list.Sort()
			fmt.Fprintln(m.out, "Strings sorted using Radix Sort.")
		case 4:
			printWords(m.out, "Sorted strings:", m.list)
		case 5:
			m.addWord()
		case 6:
			m.deleteWord()
		case 7:
			m.saveFile()
		case 8:
			fmt.Fprintln(m.out, "Exiting the program.")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please enter a valid option.")
		}
	}
}

func (m *menu) loadFile() {
	name, ok := m.token("Enter the filename: ")
	if !ok {
		return
	}
	if err := m.app.load(m.out, m.list, name); err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "File has been successfully read.")
}

func (m *menu) addWord() {
	word, ok := m.token(fmt.Sprintf("Enter the new word to add (%d characters or less): ", m.app.cfg.MaxWordLength))
	if !ok {
		return
	}
	if err := m.app.checker.Check(word); err != nil {
		fmt.Fprintf(m.out, "Note: %v. Skipping.\n", err)
		return
	}
	m.list.Insert(word)
	m.list.Sort()
	fmt.Fprintf(m.out, "Word %q added to the list and sorted.\n", word)
	printWords(m.out, "Sorted strings:", m.list)
}

func (m *menu) deleteWord() {
	word, ok := m.token("Enter the word to delete: ")
	if !ok {
		return
	}
	if m.list.Delete(word) {
		fmt.Fprintf(m.out, "Word %q deleted from the list.\n", word)
	} else {
		fmt.Fprintf(m.out, "Word %q not found in the list.\n", word)
	}
	printWords(m.out, "Sorted strings:", m.list)
}

func (m *menu) saveFile() {
	name, ok := m.token("Enter the output filename: ")
	if !ok {
		return
	}
	if err := wordfile.SaveFile(name, m.list); err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Sorted strings have been successfully saved to %s.\n", name)
}
