package scan_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/omarluq/autobind/catalog"
	"github.com/omarluq/autobind/marker"
	"github.com/omarluq/autobind/scan"
)

type alpha struct{}

type beta struct{}

type gamma struct{}

type betaPort interface {
	Run(beta)
}

func newTestCatalog(t *testing.T) *catalog.Table {
	t.Helper()
	tab := catalog.NewTable()
	if err := tab.Declare("m", catalog.Type[alpha](), marker.New(marker.Singleton)); err != nil {
		t.Fatalf("Declare alpha: %v", err)
	}
	if err := tab.Declare("m", catalog.Type[beta](), marker.New(marker.Transient, marker.As[betaPort]())); err != nil {
		t.Fatalf("Declare beta: %v", err)
	}
	tab.DeclareType("m", catalog.Type[gamma]())
	tab.DeclareType("m", catalog.Type[betaPort]())
	return tab
}

func TestScanner_MarkedTypesInDeclarationOrder(t *testing.T) {
	t.Parallel()

	s := scan.NewScanner(newTestCatalog(t))
	res, err := s.Scan("m")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(res.Marked) != 2 {
		t.Fatalf("got %d marked types, want 2", len(res.Marked))
	}
	if res.Marked[0].Type != marker.TypeOf[alpha]() {
		t.Errorf("first marked type = %v, want alpha", res.Marked[0].Type)
	}
	if res.Marked[1].Type != marker.TypeOf[beta]() {
		t.Errorf("second marked type = %v, want beta", res.Marked[1].Type)
	}

	// gamma is declared but unmarked
	for _, mt := range res.Marked {
		if mt.Type == marker.TypeOf[gamma]() {
			t.Error("unmarked type gamma must not appear in scan result")
		}
	}

	if len(res.Interfaces) != 1 || res.Interfaces[0] != marker.TypeOf[betaPort]() {
		t.Errorf("Interfaces = %v, want [betaPort]", res.Interfaces)
	}
}

func TestScanner_PartialResolutionFailureTolerated(t *testing.T) {
	t.Parallel()

	tab := catalog.NewTable()
	if err := tab.Declare("m", catalog.Type[alpha](), marker.New(marker.Scoped)); err != nil {
		t.Fatalf("Declare alpha: %v", err)
	}
	broken := catalog.LazyType("m.Broken", func() (reflect.Type, error) {
		return nil, errors.New("type load failed")
	})
	if err := tab.Declare("m", broken, marker.New(marker.Singleton)); err != nil {
		t.Fatalf("Declare broken: %v", err)
	}
	if err := tab.Declare("m", catalog.Type[beta](), marker.New(marker.Transient)); err != nil {
		t.Fatalf("Declare beta: %v", err)
	}

	res, err := scan.NewScanner(tab).Scan("m")
	if err != nil {
		t.Fatalf("Scan should tolerate partial resolution failures, got %v", err)
	}

	if len(res.Marked) != 2 {
		t.Fatalf("got %d marked types, want the 2 resolvable ones", len(res.Marked))
	}
	if res.Marked[0].Type != marker.TypeOf[alpha]() || res.Marked[1].Type != marker.TypeOf[beta]() {
		t.Errorf("marked types = %v, want [alpha beta] in discovery order", res.Marked)
	}
}

func TestScanner_UnknownModulePropagates(t *testing.T) {
	t.Parallel()

	s := scan.NewScanner(catalog.NewTable())
	_, err := s.Scan("ghost")
	if !errors.Is(err, catalog.ErrUnknownModule) {
		t.Errorf("Scan unknown module returned %v, want ErrUnknownModule", err)
	}
}
