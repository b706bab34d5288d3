// Package sourcefile reads configuration lines from files and streams.
//
// Comment lines (first non-whitespace character is CommentChar) and blank
// lines are skipped; every other line is trimmed of surrounding whitespace.
//
// Example:
//
//	r, err := sourcefile.Open("settings.conf")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	for line, ok := r.Next(); ok; line, ok = r.Next() {
//	    fmt.Println(line.Number, line.Text)
//	}
//	if err := r.Err(); err != nil {
//	    return err
//	}
package sourcefile
