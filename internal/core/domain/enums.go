package domain

import "slices"

// Agency is one of the advertising agencies under contract.
type Agency string

const (
	AgencyHOC     Agency = "HOC"
	AgencyMatriz  Agency = "Matriz"
	AgencyEngenho Agency = "Engenho"
	AgencyCentro  Agency = "Centro"
	AgencyEscala  Agency = "Escala"
)

// Agencies lists every agency in display order.
var Agencies = []Agency{AgencyHOC, AgencyMatriz, AgencyEngenho, AgencyCentro, AgencyEscala}

func (a Agency) Valid() bool { return slices.Contains(Agencies, a) }

// Status is the lifecycle stage of a campaign. Transitions are not
// restricted: any status may be set from any other.
type Status string

const (
	StatusPlanning         Status = "Planejamento"
	StatusPendingApproval  Status = "Pendente Aprovação"
	StatusInExecution      Status = "Em Execução"
	StatusAwaitingReport   Status = "Aguardando Relatório"
	StatusInternalAnalysis Status = "Análise Interna"
	StatusCompleted        Status = "Concluída"
	StatusDelayed          Status = "Atrasada"
	StatusCancelled        Status = "Cancelada"
)

// StatusOrder is the kanban column order: the main flow followed by the two
// side states.
var StatusOrder = []Status{
	StatusPlanning,
	StatusPendingApproval,
	StatusInExecution,
	StatusAwaitingReport,
	StatusInternalAnalysis,
	StatusCompleted,
	StatusDelayed,
	StatusCancelled,
}

func (s Status) Valid() bool { return slices.Contains(StatusOrder, s) }

// Active reports whether the campaign still requires work.
func (s Status) Active() bool {
	return s != StatusCompleted && s != StatusCancelled
}

// ExhibitionStatus tells whether the campaign is already on air.
type ExhibitionStatus string

const (
	ExhibitionPending ExhibitionStatus = "aguardando início"
	ExhibitionOnAir   ExhibitionStatus = "em exibição"
)

func (e ExhibitionStatus) Valid() bool {
	return e == ExhibitionPending || e == ExhibitionOnAir
}

// MediaChannel is a media type a campaign may be present in.
type MediaChannel string

const (
	MediaTelevision  MediaChannel = "Televisão"
	MediaRadio       MediaChannel = "Rádio"
	MediaPrint       MediaChannel = "Impresso"
	MediaOOH         MediaChannel = "OOH"
	MediaDOOH        MediaChannel = "DOOH"
	MediaMagazine    MediaChannel = "Revista"
	MediaCinema      MediaChannel = "Cinema"
	MediaDigital     MediaChannel = "Digital"
	MediaInfluencers MediaChannel = "Influenciadores"
	MediaIntegrated  MediaChannel = "Ações integradas"
	MediaEvents      MediaChannel = "Eventos"
)

// MediaChannels lists every channel in display order.
var MediaChannels = []MediaChannel{
	MediaTelevision,
	MediaRadio,
	MediaPrint,
	MediaOOH,
	MediaDOOH,
	MediaMagazine,
	MediaCinema,
	MediaDigital,
	MediaInfluencers,
	MediaIntegrated,
	MediaEvents,
}

func (m MediaChannel) Valid() bool { return slices.Contains(MediaChannels, m) }

// Region is a functional region (RF) of the state.
type Region string

const (
	RegionRF1 Region = "RF 1 - RMPA (Porto Alegre e Novo Hamburgo)"
	RegionRF2 Region = "RF2 - Região dos Vales (Santa Cruz do Sul e Lajeado)"
	RegionRF3 Region = "RF 3 - RMSG (Caxias do Sul e Bento Gonçalves)"
	RegionRF4 Region = "RF 4 - Litoral Norte (Capão da Canoa, Tramandaí e Osório)"
	RegionRF5 Region = "RF 5 - Pelotas e Rio Grande"
	RegionRF6 Region = "RF 6 - Fronteira Oeste (Uruguaiana e Bagé)"
	RegionRF7 Region = "RF 7 - Ijuí, Santo Ângelo e Santa Rosa"
	RegionRF8 Region = "RF 8 - Santa Maria"
	RegionRF9 Region = "RF 9 - Passo Fundo e Erechim"
)

// Regions lists every functional region in display order.
var Regions = []Region{
	RegionRF1, RegionRF2, RegionRF3, RegionRF4, RegionRF5,
	RegionRF6, RegionRF7, RegionRF8, RegionRF9,
}

func (r Region) Valid() bool { return slices.Contains(Regions, r) }
