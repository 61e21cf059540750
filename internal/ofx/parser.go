// Package ofx parses OFX/QFX bank statements into transactions for the
// local store. Real-world OFX files are frequently malformed SGML, so the
// parser repairs the common issues before handing off to ofxgo.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/centsible/centsible/internal/model"
)

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	// Opening tags at end of line missing their closing bracket, seen in
	// SGML-style exports from several banks.
	tagFixRegex = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocess fixes common formatting issues in OFX files.
func (p *Parser) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// ParseFile parses an OFX/QFX file and returns the contained transactions.
// Amounts are normalized to positive values with the sign folded into the
// transaction type: OFX debits become expenses, credits become income.
func (p *Parser) ParseFile(_ context.Context, reader io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var transactions []model.Transaction
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			if stmt.BankTranList == nil {
				continue
			}
			for _, ofxTxn := range stmt.BankTranList.Transactions {
				transactions = append(transactions, p.convert(ofxTxn))
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			if stmt.BankTranList == nil {
				continue
			}
			for _, ofxTxn := range stmt.BankTranList.Transactions {
				transactions = append(transactions, p.convert(ofxTxn))
			}
		}
	}

	slog.Info("Parsed OFX file",
		"total_transactions", len(transactions),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return transactions, nil
}

// convert maps one OFX transaction to the local model.
func (p *Parser) convert(ofxTxn ofxgo.Transaction) model.Transaction {
	amount, _ := ofxTxn.TrnAmt.Float64()

	// OFX uses negative amounts for debits.
	txnType := model.TypeIncome
	if amount < 0 {
		txnType = model.TypeExpense
		amount = -amount
	}

	txn := model.Transaction{
		ID:          string(ofxTxn.FiTID),
		Date:        ofxTxn.DtPosted.Time.Format(model.DateLayout),
		Description: p.describe(ofxTxn),
		Amount:      amount,
		Type:        txnType,
	}

	if txn.ID == "" {
		txn.ID = txn.GenerateID()
	}

	return txn
}

// describe extracts the most useful description from OFX data.
func (p *Parser) describe(txn ofxgo.Transaction) string {
	if txn.Payee != nil && txn.Payee.Name != "" {
		return cleanDescription(string(txn.Payee.Name))
	}

	name := string(txn.Name)
	if txn.Memo != "" && isGenericDescription(name) {
		name = string(txn.Memo)
	}

	return cleanDescription(name)
}

// Processor prefixes banks prepend to the merchant text.
var descriptionPrefixes = []string{
	"POS PURCHASE ",
	"PURCHASE AUTHORIZED ON ",
	"DEBIT CARD PURCHASE ",
	"ACH DEBIT ",
	"CHECK CARD ",
	"VISA PURCHASE ",
	"MC PURCHASE ",
	"DEBIT PURCHASE ",
}

// cleanDescription strips processor prefixes and leading MM/DD dates.
func cleanDescription(name string) string {
	name = strings.TrimSpace(name)

	upper := strings.ToUpper(name)
	for _, prefix := range descriptionPrefixes {
		if strings.HasPrefix(upper, prefix) {
			name = name[len(prefix):]
			break
		}
	}

	if len(name) > 5 && name[2] == '/' && name[5] == ' ' {
		name = strings.TrimSpace(name[6:])
	}

	return name
}

// isGenericDescription checks if a transaction name is too generic to be
// worth matching against, in which case the memo is preferred.
func isGenericDescription(name string) bool {
	generic := []string{
		"DEBIT",
		"CREDIT",
		"PURCHASE",
		"PAYMENT",
		"POS TRANSACTION",
		"CARD PURCHASE",
	}

	upperName := strings.ToUpper(name)
	for _, g := range generic {
		if upperName == g {
			return true
		}
	}
	return false
}
