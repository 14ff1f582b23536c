/*
File    : suji/methods/misc_methods.go
Author  : The Suji Authors
*/
package methods

import (
	"io"
	"strings"

	"github.com/suji-lang/suji/diag"
	"github.com/suji-lang/suji/values"
)

func init() {
	register(values.TupleType, []*Method{
		{Name: "len", MinArgs: 0, MaxArgs: 0, Func: tupleLen},
		{Name: "to_list", MinArgs: 0, MaxArgs: 0, Func: tupleToList},
	})
	register(values.RegexType, []*Method{
		{Name: "matches", MinArgs: 1, MaxArgs: 1, Func: regexMatches},
		{Name: "find", MinArgs: 1, MaxArgs: 1, Func: regexFind},
		{Name: "find_all", MinArgs: 1, MaxArgs: 1, Func: regexFindAll},
		{Name: "replace", MinArgs: 2, MaxArgs: 2, Func: regexReplace},
		{Name: "split", MinArgs: 1, MaxArgs: 1, Func: regexSplit},
		{Name: "source", MinArgs: 0, MaxArgs: 0, Func: regexSource},
	})
	register(values.StreamType, []*Method{
		{Name: "read", MinArgs: 1, MaxArgs: 1, Func: streamRead},
		{Name: "read_line", MinArgs: 0, MaxArgs: 0, Func: streamReadLine},
		{Name: "read_all", MinArgs: 0, MaxArgs: 0, Func: streamReadAll},
		{Name: "read_lines", MinArgs: 0, MaxArgs: 0, Func: streamReadLines},
		{Name: "write", MinArgs: 1, MaxArgs: 1, Func: streamWrite},
		{Name: "write_line", MinArgs: 1, MaxArgs: 1, Func: streamWriteLine},
		{Name: "close", MinArgs: 0, MaxArgs: 0, Func: streamClose},
	})
}

func tupleLen(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	return decimalFromInt(recv.(*values.Tuple).Len())
}

func tupleToList(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	elements := append([]values.SujiValue{}, recv.(*values.Tuple).Elements...)
	return values.NewList(elements...)
}

func regexMatches(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	s, err := wantString(args[0], "regex::matches")
	if err != nil {
		return err
	}
	return values.BoolOf(recv.(*values.Regex).Matches(s.Value))
}

// regexFind returns the first match, or nil when there is none.
func regexFind(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	s, err := wantString(args[0], "regex::find")
	if err != nil {
		return err
	}
	found := recv.(*values.Regex).Compiled.FindString(s.Value)
	if found == "" && !recv.(*values.Regex).Matches(s.Value) {
		return values.NIL
	}
	return values.NewString(found)
}

func regexFindAll(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	s, err := wantString(args[0], "regex::find_all")
	if err != nil {
		return err
	}
	found := recv.(*values.Regex).Compiled.FindAllString(s.Value, -1)
	elements := make([]values.SujiValue, len(found))
	for i, f := range found {
		elements[i] = values.NewString(f)
	}
	return values.NewList(elements...)
}

func regexReplace(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	s, err := wantString(args[0], "regex::replace")
	if err != nil {
		return err
	}
	repl, err := wantString(args[1], "regex::replace")
	if err != nil {
		return err
	}
	return values.NewString(recv.(*values.Regex).Compiled.ReplaceAllString(s.Value, repl.Value))
}

func regexSplit(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	s, err := wantString(args[0], "regex::split")
	if err != nil {
		return err
	}
	parts := recv.(*values.Regex).Compiled.Split(s.Value, -1)
	elements := make([]values.SujiValue, len(parts))
	for i, p := range parts {
		elements[i] = values.NewString(p)
	}
	return values.NewList(elements...)
}

func regexSource(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	return values.NewString(recv.(*values.Regex).Pattern)
}

func streamErr(format string, args ...interface{}) *values.Error {
	return values.NewError(diag.StreamError, format, args...)
}

// streamRead reads up to n bytes, returning a possibly shorter string at
// EOF and "" once the stream is exhausted.
func streamRead(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	stream := recv.(*values.Stream)
	n, err := wantNumber(args[0], "stream::read")
	if err != nil {
		return err
	}
	if !stream.CanRead() {
		return streamErr("stream %s is not readable", stream.Name)
	}
	buf := make([]byte, n.Int())
	read, readErr := io.ReadFull(stream.Buffered(), buf)
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		return streamErr("read from %s: %v", stream.Name, readErr)
	}
	return values.NewString(string(buf[:read]))
}

// streamReadLine reads one line without its newline; nil at EOF.
func streamReadLine(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	stream := recv.(*values.Stream)
	if !stream.CanRead() {
		return streamErr("stream %s is not readable", stream.Name)
	}
	line, readErr := stream.Buffered().ReadString('\n')
	if readErr == io.EOF && line == "" {
		return values.NIL
	}
	if readErr != nil && readErr != io.EOF {
		return streamErr("read from %s: %v", stream.Name, readErr)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return values.NewString(line)
}

func streamReadAll(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	stream := recv.(*values.Stream)
	if !stream.CanRead() {
		return streamErr("stream %s is not readable", stream.Name)
	}
	data, readErr := io.ReadAll(stream.Buffered())
	if readErr != nil {
		return streamErr("read from %s: %v", stream.Name, readErr)
	}
	return values.NewString(string(data))
}

func streamReadLines(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	all := streamReadAll(rt, recv, nil)
	if values.IsError(all) {
		return all
	}
	return stringLines(rt, all, nil)
}

func streamWrite(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	return streamWriteText(recv.(*values.Stream), args[0].ToString())
}

func streamWriteLine(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	return streamWriteText(recv.(*values.Stream), args[0].ToString()+"\n")
}

func streamWriteText(stream *values.Stream, text string) values.SujiValue {
	if !stream.CanWrite() {
		return streamErr("stream %s is not writable", stream.Name)
	}
	if _, err := io.WriteString(stream.Writer, text); err != nil {
		return streamErr("write to %s: %v", stream.Name, err)
	}
	return decimalFromInt(len(text))
}

func streamClose(rt values.Runtime, recv values.SujiValue, args []values.SujiValue) values.SujiValue {
	stream := recv.(*values.Stream)
	if err := stream.Close(); err != nil {
		return streamErr("close %s: %v", stream.Name, err)
	}
	return values.NIL
}
