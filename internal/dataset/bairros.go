// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

package dataset

// bairros is the source table. Coordinates are approximate anchors;
// school, health and investment figures are the published mock values.
var bairros = []Record{
	{Name: "Centro", Schools: 8, HealthUnits: 6, Investment: 12000000, PublicWorks: []string{"Restauro de patrimônio", "Modernização do Mercado"}, Anchor: Coordinate{-34.8711, -8.0578}},
	{Name: "Boa Viagem", Schools: 12, HealthUnits: 4, Investment: 8000000, PublicWorks: []string{"Revitalização da Praia", "Novo Centro de Saúde"}, Anchor: Coordinate{-34.9003, -8.1195}},
	{Name: "Pina", Schools: 7, HealthUnits: 3, Investment: 5500000, PublicWorks: []string{"Requalificação da orla", "Iluminação inteligente"}, Anchor: Coordinate{-34.8895, -8.0859}},
	{Name: "Brasília Teimosa", Schools: 6, HealthUnits: 2, Investment: 3000000, PublicWorks: []string{"Urbanização costeira"}, Anchor: Coordinate{-34.8728, -8.0797}},
	{Name: "Imbiribeira", Schools: 14, HealthUnits: 5, Investment: 9000000, PublicWorks: []string{"Arena esportiva", "Canal drenagem"}, Anchor: Coordinate{-34.9180, -8.0947}},
	{Name: "Ibura", Schools: 18, HealthUnits: 5, Investment: 15000000, PublicWorks: []string{"Centro Esportivo", "UPA"}, Anchor: Coordinate{-34.9445, -8.1436}},
	{Name: "Afogados", Schools: 10, HealthUnits: 5, Investment: 6000000, PublicWorks: []string{"Canalização", "Reforma escolar"}, Anchor: Coordinate{-34.9105, -8.0722}},
	{Name: "Areias", Schools: 9, HealthUnits: 3, Investment: 4500000, PublicWorks: []string{"Pavimentação"}, Anchor: Coordinate{-34.9450, -8.0815}},
	{Name: "Estância", Schools: 8, HealthUnits: 3, Investment: 4200000, PublicWorks: []string{"Parque urbano"}, Anchor: Coordinate{-34.9350, -8.0935}},
	{Name: "San Martin", Schools: 11, HealthUnits: 4, Investment: 5600000, PublicWorks: []string{"Terminal integrado"}, Anchor: Coordinate{-34.9272, -8.0678}},
	{Name: "Cordeiro", Schools: 10, HealthUnits: 4, Investment: 5800000, PublicWorks: []string{"Mercado público"}, Anchor: Coordinate{-34.9278, -8.0498}},
	{Name: "Zumbi", Schools: 5, HealthUnits: 2, Investment: 2800000, PublicWorks: []string{"Praça comunitária"}, Anchor: Coordinate{-34.8910, -8.0530}},
	{Name: "Várzea", Schools: 14, HealthUnits: 5, Investment: 8200000, PublicWorks: []string{"Pavimentação", "Ampliação posto"}, Anchor: Coordinate{-34.9590, -8.0350}},
	{Name: "Iputinga", Schools: 9, HealthUnits: 3, Investment: 4700000, PublicWorks: []string{"Canal saneamento"}, Anchor: Coordinate{-34.9365, -8.0402}},
	{Name: "Torre", Schools: 7, HealthUnits: 4, Investment: 5000000, PublicWorks: []string{"Ciclofaixa"}, Anchor: Coordinate{-34.9105, -8.0408}},
	{Name: "Madalena", Schools: 9, HealthUnits: 4, Investment: 7000000, PublicWorks: []string{"Parque linear", "Creche"}, Anchor: Coordinate{-34.9150, -8.0550}},
	{Name: "Graças", Schools: 13, HealthUnits: 5, Investment: 9000000, PublicWorks: []string{"Jardins urbanos", "Segurança viária"}, Anchor: Coordinate{-34.9035, -8.0410}},
	{Name: "Espinheiro", Schools: 11, HealthUnits: 6, Investment: 8800000, PublicWorks: []string{"Boulevard verde"}, Anchor: Coordinate{-34.8915, -8.0380}},
	{Name: "Casa Forte", Schools: 12, HealthUnits: 4, Investment: 7600000, PublicWorks: []string{"Museu interativo"}, Anchor: Coordinate{-34.9180, -8.0340}},
	{Name: "Poço da Panela", Schools: 5, HealthUnits: 2, Investment: 3000000, PublicWorks: []string{"Restauro casarões"}, Anchor: Coordinate{-34.9255, -8.0300}},
	{Name: "Apipucos", Schools: 6, HealthUnits: 2, Investment: 3500000, PublicWorks: []string{"Parque ecológico"}, Anchor: Coordinate{-34.9500, -8.0100}},
	{Name: "Parnamirim", Schools: 8, HealthUnits: 3, Investment: 5200000, PublicWorks: []string{"Eixo cultural"}, Anchor: Coordinate{-34.9030, -8.0305}},
	{Name: "Santana", Schools: 7, HealthUnits: 3, Investment: 4100000, PublicWorks: []string{"Praça esportiva"}, Anchor: Coordinate{-34.9085, -8.0345}},
	{Name: "Derby", Schools: 6, HealthUnits: 5, Investment: 6400000, PublicWorks: []string{"Terminal requalificação"}, Anchor: Coordinate{-34.8980, -8.0520}},
	{Name: "Ilha do Leite", Schools: 2, HealthUnits: 10, Investment: 10000000, PublicWorks: []string{"Centro médico"}, Anchor: Coordinate{-34.8900, -8.0630}},
	{Name: "Santo Amaro", Schools: 11, HealthUnits: 6, Investment: 7600000, PublicWorks: []string{"Restauro patrimônio", "Laboratório municipal"}, Anchor: Coordinate{-34.8760, -8.0450}},
	{Name: "Campo Grande", Schools: 8, HealthUnits: 3, Investment: 4500000, PublicWorks: []string{"Escola técnica"}, Anchor: Coordinate{-34.8805, -8.0400}},
	{Name: "Encruzilhada", Schools: 9, HealthUnits: 4, Investment: 5300000, PublicWorks: []string{"Passarela segura"}, Anchor: Coordinate{-34.8865, -8.0295}},
	{Name: "Fundão", Schools: 4, HealthUnits: 2, Investment: 2100000, PublicWorks: []string{"Pavimentação"}, Anchor: Coordinate{-34.8700, -8.0200}},
	{Name: "Arruda", Schools: 5, HealthUnits: 2, Investment: 2400000, PublicWorks: []string{"Centro cultural"}, Anchor: Coordinate{-34.8750, -8.0250}},
	{Name: "Água Fria", Schools: 7, HealthUnits: 3, Investment: 3800000, PublicWorks: []string{"Canal drenagem"}, Anchor: Coordinate{-34.8705, -8.0120}},
	{Name: "Beberibe", Schools: 6, HealthUnits: 2, Investment: 3000000, PublicWorks: []string{"Urbanização local"}, Anchor: Coordinate{-34.8650, -8.0135}},
	{Name: "Cajueiro", Schools: 5, HealthUnits: 2, Investment: 2500000, PublicWorks: []string{"Centro comunitário"}, Anchor: Coordinate{-34.8605, -8.0000}},
	{Name: "Dois Unidos", Schools: 6, HealthUnits: 2, Investment: 2600000, PublicWorks: []string{"Requalificação vias"}, Anchor: Coordinate{-34.8500, -8.0050}},
	{Name: "Linha do Tiro", Schools: 5, HealthUnits: 2, Investment: 2300000, PublicWorks: []string{"Iluminação pública"}, Anchor: Coordinate{-34.8400, -8.0150}},
	{Name: "Bomba do Hemetério", Schools: 4, HealthUnits: 2, Investment: 2000000, PublicWorks: []string{"Centro social"}, Anchor: Coordinate{-34.8680, -8.0100}},
	{Name: "Alto José do Pinho", Schools: 5, HealthUnits: 2, Investment: 2200000, PublicWorks: []string{"Escadaria acessível"}, Anchor: Coordinate{-34.8850, -8.0050}},
	{Name: "Guabiraba", Schools: 6, HealthUnits: 2, Investment: 3400000, PublicWorks: []string{"Ponto de apoio rural"}, Anchor: Coordinate{-34.9300, -7.9900}},
	{Name: "Nova Descoberta", Schools: 7, HealthUnits: 3, Investment: 3600000, PublicWorks: []string{"Creche"}, Anchor: Coordinate{-34.9150, -8.0000}},
	{Name: "Macaxeira", Schools: 6, HealthUnits: 2, Investment: 3100000, PublicWorks: []string{"Parque esportivo"}, Anchor: Coordinate{-34.9200, -8.0150}},
	{Name: "Casa Amarela", Schools: 12, HealthUnits: 5, Investment: 9500000, PublicWorks: []string{"Terminal urbano"}, Anchor: Coordinate{-34.9155, -8.0250}},
	{Name: "Vasco da Gama", Schools: 6, HealthUnits: 2, Investment: 3200000, PublicWorks: []string{"Centro cultural"}, Anchor: Coordinate{-34.9000, -8.0000}},
	{Name: "Alto José Bonifácio", Schools: 5, HealthUnits: 2, Investment: 2100000, PublicWorks: []string{"Escadaria segura"}, Anchor: Coordinate{-34.9050, -8.0100}},
	{Name: "Morro da Conceição", Schools: 5, HealthUnits: 2, Investment: 3300000, PublicWorks: []string{"Santuário turístico"}, Anchor: Coordinate{-34.9100, -8.0155}},
	{Name: "Mangabeira", Schools: 4, HealthUnits: 2, Investment: 1800000, PublicWorks: []string{"Academia ao ar livre"}, Anchor: Coordinate{-34.9250, -8.0050}},
	{Name: "Cohab", Schools: 16, HealthUnits: 6, Investment: 11000000, PublicWorks: []string{"Habitação popular"}, Anchor: Coordinate{-34.9600, -8.1700}},
	{Name: "Jordão", Schools: 9, HealthUnits: 3, Investment: 5000000, PublicWorks: []string{"Requalificação viária"}, Anchor: Coordinate{-34.9500, -8.1600}},
	{Name: "Ipsep", Schools: 10, HealthUnits: 4, Investment: 6200000, PublicWorks: []string{"Centro cultural"}, Anchor: Coordinate{-34.9300, -8.1150}},
}
