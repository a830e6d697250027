package dto

// ZipCodeResponse resultado da consulta de CEP (ViaCEP).
type ZipCodeResponse struct {
	ZipCode      string `json:"zip_code"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Found        bool   `json:"found"`
}
