package model

import "testing"

// testModel is a trimmed-down COPASI 4.14 file with the sections the
// editor touches: compartments, species, reactions, the state template,
// an optimization task with report target, objective, items and method,
// and one kinetic parameter definition.
const testModel = `<?xml version="1.0" encoding="UTF-8"?>
<!-- generated with COPASI 4.14 (Build 89) (http://www.copasi.org) at 2016-03-04 12:00:00 UTC -->
<COPASI xmlns="http://www.copasi.org/static/schema" versionMajor="4" versionMinor="14" versionDevel="89">
  <Model key="Model_3" name="TestNet" simulationType="time" timeUnit="s" volumeUnit="ml" quantityUnit="mmol">
    <ListOfCompartments>
      <Compartment key="Compartment_1" name="cytosol" simulationType="fixed" dimensionality="3">
      </Compartment>
    </ListOfCompartments>
    <ListOfMetabolites>
      <Metabolite key="Metabolite_1" name="A" simulationType="reactions" compartment="Compartment_1">
      </Metabolite>
      <Metabolite key="Metabolite_3" name="B" simulationType="reactions" compartment="Compartment_1">
      </Metabolite>
      <Metabolite key="Metabolite_5" name="E" simulationType="fixed" compartment="Compartment_1">
      </Metabolite>
    </ListOfMetabolites>
    <ListOfReactions>
      <Reaction key="Reaction_9" name="ReactA" reversible="true">
      </Reaction>
      <Reaction key="Reaction_2" name="ReactB" reversible="false">
      </Reaction>
      <Reaction key="Reaction_4" name="ReactC" reversible="false">
      </Reaction>
    </ListOfReactions>
    <StateTemplate>
      <StateTemplateVariable objectReference="Model_3"/>
      <StateTemplateVariable objectReference="Metabolite_3"/>
      <StateTemplateVariable objectReference="Metabolite_1"/>
      <StateTemplateVariable objectReference="Metabolite_5"/>
    </StateTemplate>
  </Model>
  <ListOfModelParameterSets activeSet="ModelParameterSet_1">
    <ModelParameterSet key="ModelParameterSet_1" name="Initial State">
      <ModelParameter cn="CN=Root,Model=TestNet,Vector=Reactions[ReactA],ParameterGroup=Parameters,Parameter=k1" value="0.2" type="ReactionParameter" simulationType="fixed"/>
      <ModelParameter cn="CN=Root,Model=TestNet,Vector=Reactions[ReactB],ParameterGroup=Parameters,Parameter=k1" value="0.7" type="ReactionParameter" simulationType="fixed"/>
    </ModelParameterSet>
  </ListOfModelParameterSets>
  <ListOfTasks>
    <Task key="Task_17" name="Optimization" type="optimization" scheduled="false" updateModel="false">
      <Report reference="Report_10" target="oldReport.txt" append="0"/>
      <Problem>
        <Parameter name="Maximize" type="bool" value="0"/>
        <Parameter name="Subtask" type="cn" value="CN=Root,Vector=TaskList[Steady-State]"/>
        <ParameterText name="ObjectiveExpression" type="expression">
          &lt;CN=Root,Model=TestNet,Vector=TaskList[Metabolic Control Analysis],Object=Result,Array=Scaled flux control coefficients[2][3]&gt;
        </ParameterText>
        <ParameterGroup name="OptimizationItemList">
          <ParameterGroup name="OptimizationItem">
            <Parameter name="LowerBound" type="cn" value="1e-06"/>
            <Parameter name="ObjectCN" type="cn" value="CN=Root,Model=TestNet,Vector=Values[Vmax],Reference=InitialValue"/>
            <Parameter name="StartValue" type="float" value="0.5"/>
            <Parameter name="UpperBound" type="cn" value="1e+06"/>
          </ParameterGroup>
          <ParameterGroup name="OptimizationItem">
            <Parameter name="LowerBound" type="cn" value="1e-06"/>
            <Parameter name="ObjectCN" type="cn" value="CN=Root,Model=TestNet,Vector=Reactions[ReactA],ParameterGroup=Parameters,Parameter=k1,Reference=Value"/>
            <Parameter name="StartValue" type="float" value="0.1"/>
            <Parameter name="UpperBound" type="cn" value="1e+06"/>
          </ParameterGroup>
        </ParameterGroup>
      </Problem>
      <Method name="Random Search" type="RandomSearchMethod">
        <Parameter name="Number of Iterations" type="unsignedInteger" value="100000"/>
        <Parameter name="Random Number Generator" type="unsignedInteger" value="1"/>
        <Parameter name="Seed" type="unsignedInteger" value="0"/>
      </Method>
    </Task>
  </ListOfTasks>
</COPASI>
`

// testModelTwoCompartments exercises metabolite name disambiguation: with
// more than one compartment, display names carry a _<compartment> suffix.
const testModelTwoCompartments = `<?xml version="1.0" encoding="UTF-8"?>
<!-- generated with COPASI 4.15 (Build 95) (http://www.copasi.org) at 2016-03-04 12:00:00 UTC -->
<COPASI xmlns="http://www.copasi.org/static/schema" versionMajor="4" versionMinor="15" versionDevel="95">
  <Model key="Model_1" name="TwoComp" simulationType="time" timeUnit="s" volumeUnit="ml" quantityUnit="mmol">
    <ListOfCompartments>
      <Compartment key="Compartment_1" name="cytosol" simulationType="fixed" dimensionality="3">
      </Compartment>
      <Compartment key="Compartment_3" name="mito" simulationType="fixed" dimensionality="3">
      </Compartment>
    </ListOfCompartments>
    <ListOfMetabolites>
      <Metabolite key="Metabolite_1" name="NAD" simulationType="reactions" compartment="Compartment_1">
      </Metabolite>
      <Metabolite key="Metabolite_3" name="NAD" simulationType="reactions" compartment="Compartment_3">
      </Metabolite>
      <Metabolite key="Metabolite_5" name="Glc" simulationType="fixed" compartment="Compartment_1">
      </Metabolite>
    </ListOfMetabolites>
    <StateTemplate>
      <StateTemplateVariable objectReference="Model_1"/>
      <StateTemplateVariable objectReference="Metabolite_3"/>
      <StateTemplateVariable objectReference="Metabolite_5"/>
      <StateTemplateVariable objectReference="Metabolite_1"/>
    </StateTemplate>
  </Model>
</COPASI>
`

func mustParse(t *testing.T, content string) *Document {
	t.Helper()
	d, err := Parse("test.cps", content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return d
}
