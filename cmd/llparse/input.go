package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// lineReader reads single lines of user input, after showing a prompt.
// At end of input, ReadLine returns io.EOF.
type lineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// directReader reads lines from any input stream, without line editing.
type directReader struct {
	r   *bufio.Reader
	out io.Writer
}

func newDirectReader(r io.Reader, out io.Writer) *directReader {
	return &directReader{r: bufio.NewReader(r), out: out}
}

func (dr *directReader) ReadLine(prompt string) (string, error) {
	if dr.out != nil {
		fmt.Fprint(dr.out, prompt)
	}
	line, err := dr.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (dr *directReader) Close() error {
	return nil
}

// interactiveReader reads lines from the terminal using readline, which keeps
// input clear of editing escape sequences and maintains a history.
type interactiveReader struct {
	rl *readline.Instance
}

func newInteractiveReader() (*interactiveReader, error) {
	rl, err := readline.New("> ")
	if err != nil {
		return nil, fmt.Errorf("create readline instance: %w", err)
	}
	return &interactiveReader{rl: rl}, nil
}

func (ir *interactiveReader) ReadLine(prompt string) (string, error) {
	ir.rl.SetPrompt(prompt)
	line, err := ir.rl.Readline()
	if err == readline.ErrInterrupt {
		return "", io.EOF
	}
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (ir *interactiveReader) Close() error {
	return ir.rl.Close()
}
