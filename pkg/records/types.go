package records

// Fields are the editable columns of a Clientes row. The JSON names are the
// column names of the remote table.
type Fields struct {
	Name  string `json:"Nome"`
	Email string `json:"Email"`
	Phone string `json:"Telefone"`
}

// Record is one row of the remote table. Fields may be partially empty on
// read; writes always carry all three.
type Record struct {
	ID          string `json:"id"`
	CreatedTime string `json:"createdTime,omitempty"`
	Fields      Fields `json:"fields"`
}

type listResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}

type writeRequest struct {
	Fields Fields `json:"fields"`
}
