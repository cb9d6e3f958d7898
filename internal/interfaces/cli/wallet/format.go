package wallet

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cbnu/subscribe-service/internal/application/ledger/dto"
	"github.com/cbnu/subscribe-service/internal/shared/biztime"
)

var (
	printer = message.NewPrinter(language.English)
	titler  = cases.Title(language.English)
)

// formatPoints renders a balance with thousands separators.
func formatPoints(points int64) string {
	return printer.Sprintf("%d P", points)
}

// entryLabel turns an entry type such as present_out into "Present Out".
func entryLabel(entryType string) string {
	return titler.String(strings.ReplaceAll(entryType, "_", " "))
}

func printWallet(w io.Writer, wallet *dto.WalletDTO) {
	fmt.Fprintf(w, "User:     %d\n", wallet.UserID)
	fmt.Fprintf(w, "Balance:  %s\n", formatPoints(wallet.Balance))
	fmt.Fprintf(w, "Version:  %d\n", wallet.Version)
	fmt.Fprintf(w, "Updated:  %s\n", biztime.FormatInBizTimezone(wallet.UpdatedAt, "2006-01-02 15:04:05"))
}

func printChange(w io.Writer, change *dto.BalanceChangeDTO) {
	fmt.Fprintf(w, "User %d: %s -> %s\n", change.UserID,
		formatPoints(change.PreviousBalance), formatPoints(change.Balance))
}

func printHistory(w io.Writer, list *dto.PointHistoryListDTO) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIME\tTYPE\tAMOUNT\tBALANCE\tCOUNTERPARTY")
	for _, e := range list.Items {
		counterparty := "-"
		if e.CounterpartyUserID != nil {
			counterparty = fmt.Sprintf("%d", *e.CounterpartyUserID)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			e.ID,
			biztime.FormatInBizTimezone(e.CreatedAt, "2006-01-02 15:04"),
			entryLabel(e.Type),
			formatPoints(e.Amount),
			formatPoints(e.BalanceAfter),
			counterparty,
		)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "page %d, %d of %d entries\n", list.Page, len(list.Items), list.Total)
}
