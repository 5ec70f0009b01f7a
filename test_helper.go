package rentfolio

// USD is a helper for tests to create US dollar money from a constant.
func USD(v float64) Money { return M(v, "USD") }

// CAD is a helper for tests to create Canadian dollar money from a constant.
func CAD(v float64) Money { return M(v, "CAD") }
