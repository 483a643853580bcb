package employee

import "testing"

func TestListFilterWhereNumbersArgs(t *testing.T) {
	clause, args := ListFilter{CompanyID: "c1", Role: "Employee"}.where()
	if clause != ` WHERE 1=1 AND company_id = $1 AND role = $2` {
		t.Fatalf("unexpected clause: %q", clause)
	}
	if len(args) != 2 || args[0] != "c1" || args[1] != "Employee" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestListFilterWhereEmpty(t *testing.T) {
	clause, args := ListFilter{}.where()
	if clause != ` WHERE 1=1` {
		t.Fatalf("unexpected clause: %q", clause)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %+v", args)
	}
}

// Paging bounds the page the List query fetches, never the Count. The
// where clause must stay identical between the two so the reported total
// matches the filtered set.
func TestListFilterWhereIgnoresPaging(t *testing.T) {
	paged := ListFilter{Department: "Sales", Limit: 10, Offset: 20}
	unpaged := ListFilter{Department: "Sales"}

	pagedClause, pagedArgs := paged.where()
	unpagedClause, unpagedArgs := unpaged.where()
	if pagedClause != unpagedClause {
		t.Fatalf("paging leaked into where clause: %q vs %q", pagedClause, unpagedClause)
	}
	if len(pagedArgs) != len(unpagedArgs) {
		t.Fatalf("paging leaked into args: %+v vs %+v", pagedArgs, unpagedArgs)
	}
}
