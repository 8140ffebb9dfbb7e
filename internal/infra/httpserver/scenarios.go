package httpserver

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appscenarios "github.com/bryanwahyu/roi-simulator/internal/application/scenarios"
	domain "github.com/bryanwahyu/roi-simulator/internal/domain/scenarios"
	"github.com/bryanwahyu/roi-simulator/internal/middleware"
)

// POST /simulate
func (r *Router) handleSimulate(w http.ResponseWriter, req *http.Request) error {
	var body inputsRequest
	if err := decode(req, &body); err != nil {
		return err
	}
	in, err := body.toInputs()
	if err != nil {
		return err
	}

	res, err := r.scenariosSvc.Simulate(in)
	if err != nil {
		return err
	}
	middleware.IncrementSimulations()

	return writeJSON(w, http.StatusOK, envelope{"results": res})
}

// POST /scenarios
func (r *Router) handleCreateScenario(w http.ResponseWriter, req *http.Request) error {
	var body scenarioRequest
	if err := decode(req, &body); err != nil {
		return err
	}
	name, err := middleware.ValidateScenarioName(body.ScenarioName)
	if err != nil {
		return err
	}
	in, err := body.toInputs()
	if err != nil {
		return err
	}

	sc, err := r.scenariosSvc.Create(req.Context(), appscenarios.CreateScenarioCommand{Name: name, Inputs: in})
	if err != nil {
		return err
	}
	middleware.IncrementSimulations()
	middleware.IncrementScenariosSaved()

	return writeJSON(w, http.StatusCreated, envelope{"scenario": sc})
}

// GET /scenarios?page=&page_size=
func (r *Router) handleListScenarios(w http.ResponseWriter, req *http.Request) error {
	page, _ := strconv.Atoi(req.URL.Query().Get("page"))
	size, _ := strconv.Atoi(req.URL.Query().Get("page_size"))

	list, err := r.scenariosSvc.List(req.Context(), middleware.ValidatePage(page), middleware.ValidateLimit(size))
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, envelope{
		"scenarios":   list.Data,
		"page":        list.Page,
		"page_size":   list.PageSize,
		"total":       list.Total,
		"total_pages": list.TotalPages,
	})
}

// GET /scenarios/{id}
func (r *Router) handleGetScenario(w http.ResponseWriter, req *http.Request) error {
	id, err := middleware.ParseScenarioID(chi.URLParam(req, "id"))
	if err != nil {
		return err
	}

	sc, err := r.scenariosSvc.Get(req.Context(), domain.ScenarioID(id))
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, envelope{"scenario": sc})
}

// DELETE /scenarios/{id}
func (r *Router) handleDeleteScenario(w http.ResponseWriter, req *http.Request) error {
	id, err := middleware.ParseScenarioID(chi.URLParam(req, "id"))
	if err != nil {
		return err
	}

	if err := r.scenariosSvc.Delete(req.Context(), domain.ScenarioID(id)); err != nil {
		return err
	}
	middleware.IncrementScenariosDeleted()

	return writeJSON(w, http.StatusOK, envelope{"deleted": id})
}
