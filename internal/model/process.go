package model

// Process edustaa yhtä containeria `docker ps` listauksessa
type Process struct {
	Status  string
	Created string // normalized to "YYYY-MM-DD HH:MM"
}
