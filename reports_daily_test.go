package financeai

import "testing"

func TestDailySeries(t *testing.T) {
	transactions := []Transaction{
		tx("2025-01-05", Income, 1000, "Salário"),
		tx("2025-01-05", Expense, 300, "Compras"),
		tx("2025-01-10", Expense, 200, "Lazer"),
		tx("2025-02-05", Income, 9999, "Salário"), // other month
	}
	on := MustParseDate("2025-01-20")

	tests := []struct {
		name   string
		filter TypeFilter
		day    int
		want   Money
	}{
		{"all nets income and expense", FilterAll, 5, BRL(700)},
		{"all is negative on expense-only day", FilterAll, 10, BRL(-200)},
		{"income only", FilterIncome, 5, BRL(1000)},
		{"income ignores expense day", FilterIncome, 10, BRL(0)},
		{"expense only", FilterExpense, 5, BRL(300)},
		{"empty day is zero", FilterAll, 17, BRL(0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			series := DailySeries(transactions, on, tc.filter)
			if len(series) != 31 {
				t.Fatalf("January series has %d points, want 31", len(series))
			}
			got := series[tc.day-1]
			if got.Day != tc.day {
				t.Errorf("point %d carries day %d", tc.day, got.Day)
			}
			if !got.Value.Equal(tc.want) {
				t.Errorf("day %d value = %s, want %s", tc.day, got.Value, tc.want)
			}
		})
	}
}

func TestDailySeries_MonthLength(t *testing.T) {
	tests := []struct {
		on   string
		want int
	}{
		{"2025-01-15", 31},
		{"2025-02-15", 28},
		{"2024-02-15", 29}, // leap year
		{"2025-04-15", 30},
	}
	for _, tc := range tests {
		series := DailySeries(nil, MustParseDate(tc.on), FilterAll)
		if len(series) != tc.want {
			t.Errorf("DailySeries(%s) has %d points, want %d", tc.on, len(series), tc.want)
		}
		for i, p := range series {
			if p.Day != i+1 {
				t.Fatalf("point %d carries day %d", i, p.Day)
			}
			if !p.Value.IsZero() {
				t.Fatalf("day %d of empty collection is %s, want zero", p.Day, p.Value)
			}
		}
	}
}
