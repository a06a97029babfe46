package transport

import (
	"errors"
	"net/http"
	"time"

	"github.com/goodnatureofminers/simtrace-backend/internal/service"
	"github.com/goodnatureofminers/simtrace-backend/internal/trace/event"
	"github.com/goodnatureofminers/simtrace-backend/internal/trace/loader"
	"github.com/goodnatureofminers/simtrace-backend/internal/trace/model"
	"github.com/goodnatureofminers/simtrace-backend/internal/trace/palette"
	"github.com/goodnatureofminers/simtrace-backend/internal/trace/snapshot"
)

type healthResponse struct {
	Status   string     `json:"status"`
	Loaded   bool       `json:"loaded"`
	LoadID   string     `json:"load_id,omitempty"`
	Digest   string     `json:"digest,omitempty"`
	LoadedAt *time.Time `json:"loaded_at,omitempty"`
}

func (h *TraceHandler) health(w http.ResponseWriter, _ *http.Request) {
	resp := healthResponse{Status: "ok"}
	if cur := h.source.Current(); cur != nil {
		resp.Loaded = true
		resp.LoadID = cur.ID.String()
		resp.Digest = cur.Digest.String()
		resp.LoadedAt = &cur.LoadedAt
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type timestampsResponse struct {
	Timestamps []model.Timestamp `json:"timestamps"`
}

func (h *TraceHandler) timestamps(w http.ResponseWriter, _ *http.Request, loaded *service.Loaded) {
	ts := loaded.Result.Timestamps
	if ts == nil {
		ts = []model.Timestamp{}
	}
	h.writeJSON(w, http.StatusOK, timestampsResponse{Timestamps: ts})
}

type regionResponse struct {
	ID     model.RegionID `json:"id"`
	Name   string         `json:"name"`
	Bounds model.Bounds   `json:"bounds"`
}

func (h *TraceHandler) regions(w http.ResponseWriter, _ *http.Request, loaded *service.Loaded) {
	all := loaded.Result.Trace.AllRegions()
	resp := make([]regionResponse, 0, len(all))
	for _, r := range all {
		resp = append(resp, regionResponse{ID: r.ID, Name: r.Name, Bounds: r.Bounds})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type nodeResponse struct {
	ID              model.NodeID    `json:"id"`
	Region          model.RegionID  `json:"region"`
	Position        model.Position  `json:"position"`
	CreatedAt       model.Timestamp `json:"created_at"`
	Blocks          int             `json:"blocks"`
	CommitteeRounds []int64         `json:"committee_rounds,omitempty"`
	ProposerRounds  []int64         `json:"proposer_rounds,omitempty"`
}

func (h *TraceHandler) nodes(w http.ResponseWriter, _ *http.Request, loaded *service.Loaded) {
	all := loaded.Result.Trace.AllNodes()
	resp := make([]nodeResponse, 0, len(all))
	for _, n := range all {
		resp = append(resp, nodeResponse{
			ID:              n.ID,
			Region:          n.Region,
			Position:        n.Position,
			CreatedAt:       n.CreatedAt,
			Blocks:          len(n.Blocks()),
			CommitteeRounds: n.CommitteeRounds(),
			ProposerRounds:  n.ProposerRounds(),
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type receiptResponse struct {
	Block    model.BlockID   `json:"block"`
	From     model.NodeID    `json:"from"`
	Sent     model.Timestamp `json:"sent"`
	Received model.Timestamp `json:"received"`
}

type nodeStateResponse struct {
	snapshot.NodeState
	At   model.Timestamp  `json:"at"`
	Next *receiptResponse `json:"next,omitempty"`
}

func (h *TraceHandler) node(w http.ResponseWriter, r *http.Request, loaded *service.Loaded) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	t, err := at(r, loaded)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	tr := loaded.Result.Trace
	n, err := tr.Node(model.NodeID(id))
	if err != nil {
		h.writeError(w, statusFor(err), err)
		return
	}
	resp := nodeStateResponse{
		NodeState: snapshot.NodeAt(tr, n, t, loaded.Mode, len(tr.AllBlocks())),
		At:        t,
	}
	if next, ok := n.NextBlock(t); ok {
		resp.Next = &receiptResponse{Block: next.Block, From: next.From, Sent: next.Sent, Received: next.Received}
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type linksResponse struct {
	At    model.Timestamp      `json:"at"`
	Links []snapshot.LinkState `json:"links"`
}

func (h *TraceHandler) links(w http.ResponseWriter, r *http.Request, loaded *service.Loaded) {
	t, err := at(r, loaded)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	tr := loaded.Result.Trace
	total := len(tr.AllBlocks())
	resp := linksResponse{At: t, Links: []snapshot.LinkState{}}
	for _, l := range tr.AllLinks() {
		if ls := snapshot.LinkAt(l, t, total); ls != nil {
			resp.Links = append(resp.Links, *ls)
		}
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type flowResponse struct {
	From     model.NodeID    `json:"from"`
	To       model.NodeID    `json:"to"`
	Sent     model.Timestamp `json:"sent"`
	Received model.Timestamp `json:"received"`
}

type blockResponse struct {
	ID        model.BlockID   `json:"id"`
	Owner     model.NodeID    `json:"owner"`
	CreatedAt model.Timestamp `json:"created_at"`
	Color     palette.RGB     `json:"color"`
	Flows     []flowResponse  `json:"flows"`
}

func (h *TraceHandler) block(w http.ResponseWriter, r *http.Request, loaded *service.Loaded) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	tr := loaded.Result.Trace
	b, err := tr.Block(model.BlockID(id))
	if err != nil {
		h.writeError(w, statusFor(err), err)
		return
	}
	flows := b.Flows()
	resp := blockResponse{
		ID:        b.ID,
		Owner:     b.Owner,
		CreatedAt: b.CreatedAt,
		Color:     palette.ColorForID(b.ID, len(tr.AllBlocks())),
		Flows:     make([]flowResponse, 0, len(flows)),
	}
	for _, f := range flows {
		resp.Flows = append(resp.Flows, flowResponse{From: f.From, To: f.To, Sent: f.Sent, Received: f.Received})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *TraceHandler) snapshot(w http.ResponseWriter, r *http.Request, loaded *service.Loaded) {
	t, err := at(r, loaded)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	snap, err := h.snapshots.At(r.Context(), loaded.Result.Trace, t, loaded.Mode)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	h.writeJSON(w, http.StatusOK, snap)
}

type diagnosticsResponse struct {
	LoadID            string              `json:"load_id"`
	Success           bool                `json:"success"`
	Records           int                 `json:"records"`
	DroppedMessages   int                 `json:"dropped_messages"`
	UnorderedMessages int                 `json:"unordered_messages"`
	SkippedTimestamps int                 `json:"skipped_timestamps"`
	Diagnostics       []loader.Diagnostic `json:"diagnostics"`
	Statistics        *event.Statistics   `json:"statistics,omitempty"`
}

func (h *TraceHandler) diagnostics(w http.ResponseWriter, _ *http.Request, loaded *service.Loaded) {
	res := loaded.Result
	diags := res.Diagnostics
	if diags == nil {
		diags = []loader.Diagnostic{}
	}
	h.writeJSON(w, http.StatusOK, diagnosticsResponse{
		LoadID:            loaded.ID.String(),
		Success:           res.Success,
		Records:           res.Records,
		DroppedMessages:   res.DroppedMessages,
		UnorderedMessages: res.UnorderedMessages,
		SkippedTimestamps: res.SkippedTimestamps,
		Diagnostics:       diags,
		Statistics:        res.Statistics,
	})
}

func statusFor(err error) int {
	if errors.Is(err, model.ErrUnresolvedEntityReference) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
