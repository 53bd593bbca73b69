package parser

import "strings"

// The statement listing interleaves four kinds of lines: date-pair lines
// that open a transaction, free-text lines that describe the *next*
// transaction, payment-method lines that close the previous one, and
// page/section furniture. parseState tracks whether the line after a
// date-pair line is still owed to the open transaction.
type parseState int

const (
	stateScanning parseState = iota
	stateExpectingMethod
)

// pendingTxn is the single in-flight transaction. The parser never holds
// two: a pending transaction is flushed before a new one opens.
type pendingTxn struct {
	posted string
	tran   string
	desc   string
	amount string
}

type sectionParser struct {
	state   parseState
	pending *pendingTxn
	buffer  []string
	out     []string
}

// ParseSection runs the statement-line state machine over one section and
// returns the emitted output lines: a header line per transaction,
// optionally followed by an amount or payment-method line.
func ParseSection(lines []string) []string {
	p := &sectionParser{}
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		upper := strings.ToUpper(line)

		// A page footer ends the section outright. Any open pending
		// transaction is discarded, not flushed.
		if isPageFooter(upper) {
			return p.out
		}

		if p.state == stateExpectingMethod {
			if IsDatePair(line) {
				// Not a method line after all: close the previous
				// transaction and let this line open the next one below.
				p.flush()
				p.state = stateScanning
			} else {
				p.consumeMethodLine(line)
				continue
			}
		}

		if isSectionHeading(upper) {
			continue
		}

		if posted, tran, rest, ok := MatchDatePair(line); ok {
			p.openTransaction(posted, tran, rest)
			continue
		}

		// Plain text ahead of the next date-pair line: part of that
		// transaction's description.
		p.buffer = append(p.buffer, line)
	}
	p.flush()
	return p.out
}

// ParsePages extracts sections from per-page line lists and parses each,
// concatenating the output in page order.
func ParsePages(pages [][]string) []string {
	var out []string
	for _, section := range ExtractSections(pages) {
		out = append(out, ParseSection(section)...)
	}
	return out
}

// openTransaction starts a new pending transaction from a date-pair line.
// The last signed amount in rest, if any, becomes the amount; text before
// it joins the buffered description lines.
func (p *sectionParser) openTransaction(posted, tran, rest string) {
	rest = strings.TrimSpace(rest)
	amount := ""
	extraDesc := rest
	if amt, start, ok := lastAmount(rest); ok {
		amount = amt
		extraDesc = strings.TrimSpace(rest[:start])
	}

	parts := make([]string, 0, len(p.buffer)+1)
	for _, part := range p.buffer {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if extraDesc != "" {
		parts = append(parts, extraDesc)
	}

	p.pending = &pendingTxn{
		posted: posted,
		tran:   tran,
		desc:   strings.TrimSpace(strings.Join(parts, " ")),
		amount: amount,
	}
	p.buffer = nil
	p.state = stateExpectingMethod
}

// consumeMethodLine closes the pending transaction with a payment-method
// line. The pending amount is appended to the method text unless the
// method line already carries an amount of its own.
func (p *sectionParser) consumeMethodLine(line string) {
	if p.pending != nil {
		p.emitHeader()
		if p.pending.amount != "" && !HasAmount(line) {
			line = strings.TrimSpace(line + " " + p.pending.amount)
		}
		p.out = append(p.out, line)
	}
	p.buffer = nil
	p.pending = nil
	p.state = stateScanning
}

// flush emits the pending transaction's header line and amount line,
// suppressing either when empty.
func (p *sectionParser) flush() {
	if p.pending == nil {
		return
	}
	p.emitHeader()
	if p.pending.amount != "" {
		p.out = append(p.out, p.pending.amount)
	}
	p.pending = nil
}

func (p *sectionParser) emitHeader() {
	header := strings.TrimSpace(p.pending.posted + " " + p.pending.tran + " " + p.pending.desc)
	if header != "" {
		p.out = append(p.out, header)
	}
}
