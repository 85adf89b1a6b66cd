package entity

// Project representa un proyecto (obra) dueño de almacenes. Colaborador
// externo del subsistema de almacenes: aquí solo se consulta su existencia.
type Project struct {
	Code   int
	Name   string
	Active bool
}
