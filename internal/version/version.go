package version

const Value = "1.2.0"

func ReportHeader() string {
	return "macaudit " + Value + " (pre-purchase hardware audit)"
}
